// Command seed-admin creates or resets the bootstrap administrator account.
//
//	go run ./cmd/seed-admin -password 'S3cret!' -migrate
//	go run ./cmd/seed-admin -hash-only -password 'S3cret!'
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ecodive/backoffice-server-go/internal/authz"
	"github.com/ecodive/backoffice-server-go/internal/config"
	"github.com/ecodive/backoffice-server-go/internal/database"
	"github.com/ecodive/backoffice-server-go/internal/model"
	"github.com/ecodive/backoffice-server-go/internal/repository"
	"github.com/ecodive/backoffice-server-go/internal/util"
)

const (
	adminEmail     = "admin@ecodive.com"
	adminFirstName = "Admin"
	adminLastName  = "EcoDive"
)

func main() {
	password := flag.String("password", "Admin123!", "password for "+adminEmail)
	migrate := flag.Bool("migrate", false, "apply migrations before seeding")
	hashOnly := flag.Bool("hash-only", false, "print the bcrypt hash of -password and exit")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	hash, err := util.HashPassword(*password)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}
	if *hashOnly {
		fmt.Println(hash)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()
	db, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if *migrate {
		if err := db.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	var admin *model.TeamMember
	err = db.WithTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		admin, err = repository.NewTeamMemberRepository(tx).UpsertByEmail(ctx, model.TeamMember{
			FirstName:    adminFirstName,
			LastName:     adminLastName,
			Email:        adminEmail,
			PasswordHash: hash,
			Role:         string(authz.RoleAdmin),
		})
		return err
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin")
	}
	if admin == nil {
		log.Fatal().Msg("seed returned no row")
	}

	log.Info().Int64("id", admin.ID).Str("email", admin.Email).Msg("admin account ready")
}
