package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/teams-directory/internal/config"
	"github.com/aidar/teams-directory/internal/domain"
	"github.com/aidar/teams-directory/internal/migrator"
	"github.com/aidar/teams-directory/internal/repository/postgres"
	"github.com/aidar/teams-directory/internal/service"
)

func main() {
	// Загружаем конфигурацию из переменных окружения
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Не удалось загрузить конфигурацию: %v", err)
	}

	// Применяем миграции, чтобы схема существовала до заполнения
	if err := migrator.Run(cfg.Database.DSN()); err != nil {
		log.Fatalf("Не удалось применить миграции: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Не удалось подключиться к базе данных: %v", err)
	}
	defer pool.Close()

	// Начинаем с чистого состояния: тестовые данные заменяют прежние
	if _, err := pool.Exec(ctx, "TRUNCATE users, teams, companies RESTART IDENTITY CASCADE"); err != nil {
		log.Fatalf("Не удалось очистить таблицы: %v", err)
	}

	teamRepo := postgres.NewTeamRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	teamService := service.NewTeamService(teamRepo, userRepo)

	// Тестовые команды проходят тот же путь загрузки, что и API
	teams := []domain.NewTeam{
		{
			Name: "NWA",
			Members: []domain.NewMember{
				{Name: "Ice Cube", Email: "icecube@gmail.com", Company: "Ruthless_Records"},
				{Name: "MC Ren", Email: "ren@hotmail.com", Company: "Ruthless_Records"},
			},
		},
		{
			Name: "GFUNK",
			Members: []domain.NewMember{
				{Name: "Warren G", Email: "warren@gmail.com", Company: "Def_Jam_Records"},
				{Name: "Nate Dogg", Email: "nate@gmail.com", Company: "Def_Jam_Records"},
			},
		},
	}

	for i := range teams {
		id, err := teamService.AddTeam(ctx, &teams[i])
		if err != nil {
			log.Fatalf("Не удалось добавить команду %s: %v", teams[i].Name, err)
		}
		fmt.Printf("Добавлена команда %s (id=%d)\n", teams[i].Name, id)
	}

	fmt.Println("Тестовые данные загружены")
}
