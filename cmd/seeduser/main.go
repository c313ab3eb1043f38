// Comando seeduser crea un usuario inicial directamente en la base de datos.
// Útil para el primer admin antes de que exista nadie que pueda loguearse.
//
//	go run ./cmd/seeduser -name "Admin" -email admin@example.com -password secreto123 -role admin
package main

import (
	"context"
	"flag"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stockpilot-api/internal/domain/entity"
	"github.com/tu-usuario/stockpilot-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/stockpilot-api/pkg/config"
	"github.com/tu-usuario/stockpilot-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	name := flag.String("name", "", "nombre del usuario")
	email := flag.String("email", "", "email del usuario")
	password := flag.String("password", "", "password en claro (se guarda hasheado)")
	role := flag.String("role", entity.RoleAdmin, "rol: admin o staff")
	flag.Parse()

	log := logger.New(logger.Config{Env: "development", Level: "info"})

	if *name == "" || *email == "" || *password == "" {
		log.Fatal().Msg("uso: seeduser -name <nombre> -email <email> -password <password> [-role admin|staff]")
	}
	if !entity.ValidRole(*role) {
		log.Fatal().Str("role", *role).Msg("rol inválido, debe ser admin o staff")
	}
	if len(*password) < 8 {
		log.Fatal().Msg("password debe tener al menos 8 caracteres")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("cargar configuración")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(*name),
		Email:        strings.ToLower(strings.TrimSpace(*email)),
		PasswordHash: string(hash),
		Role:         *role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := postgres.NewUserRepository(pool).Create(user); err != nil {
		log.Fatal().Err(err).Str("email", user.Email).Msg("crear usuario")
	}

	log.Info().
		Str("id", user.ID).
		Str("email", user.Email).
		Str("role", user.Role).
		Msg("usuario creado")
}
