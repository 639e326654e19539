// Seeds the service catalog with the shop's standard offering. Safe to run
// repeatedly: existing services are left untouched.
package main

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/glanzwerk/rechnung-api/internal/domain"
	"github.com/glanzwerk/rechnung-api/internal/domain/entity"
	"github.com/glanzwerk/rechnung-api/internal/infrastructure/postgres"
	"github.com/glanzwerk/rechnung-api/pkg/config"
	"github.com/glanzwerk/rechnung-api/pkg/logger"
)

var catalog = []struct {
	name  string
	price string
}{
	{"Außenreinigung per Hand", "25.00"},
	{"Felgenreinigung & Flugrostentfernung", "35.00"},
	{"Innenraumreinigung", "30.00"},
	{"Lederreinigung & -pflege", "45.00"},
	{"Lederreparatur", "80.00"},
	{"Polster- & Teppichreinigung", "40.00"},
	{"Scheibenreinigung innen & außen", "15.00"},
	{"Lackpolitur & Glanzversiegelung", "120.00"},
	{"Nano-Keramik-Versiegelung", "200.00"},
	{"Motorraumreinigung", "50.00"},
	{"Geruchsneutralisierung & Ozonbehandlung", "60.00"},
	{"Tierhaarentfernung", "35.00"},
	{"Hagelschaden- und Dellenentfernung (Ausbeulen ohne Lackieren)", "150.00"},
	{"Auto Folieren", "300.00"},
	{"Abhol- und Bringservice", "20.00"},
	{"Innen- & Außenreinigung", "70.00"},
	{"GlanzWerk Premium Van", "149.00"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("ensure database schema")
	}

	repo := postgres.NewServiceRepository(pool)
	now := time.Now()
	added := 0
	for _, s := range catalog {
		err := repo.Create(&entity.Service{
			ID:            uuid.New().String(),
			Name:          s.name,
			StandardPrice: decimal.RequireFromString(s.price),
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		switch {
		case err == nil:
			added++
			log.Info().Str("service", s.name).Str("price", s.price).Msg("service added")
		case errors.Is(err, domain.ErrConflict):
			log.Debug().Str("service", s.name).Msg("service already present")
		default:
			log.Fatal().Err(err).Str("service", s.name).Msg("seed service")
		}
	}

	log.Info().Int("added", added).Int("total", len(catalog)).Msg("catalog seed completed")
}
