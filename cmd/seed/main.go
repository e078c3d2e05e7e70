// Утилита первичного наполнения БД: тренеры и недельный шаблон расписания.
// Идемпотентна, существующие строки не трогает.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/TecWeb-Studio/newbodyline2/internal/config"
	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	schedulestorage "github.com/TecWeb-Studio/newbodyline2/internal/infra/storage/schedule"
	trainerstorage "github.com/TecWeb-Studio/newbodyline2/internal/infra/storage/trainer"
	"github.com/TecWeb-Studio/newbodyline2/pkg/ptr"
	"github.com/TecWeb-Studio/newbodyline2/pkg/types"
)

var trainers = []*domain.Trainer{
	{
		ID:          "elena-petrova",
		Name:        "Elena Petrova",
		Specialty:   "Functional training",
		Image:       "/images/trainers/elena.jpg",
		Description: "Certified functional training coach, 8 years of experience.",
		Rating:      4.9,
		Phone:       ptr.Ptr("+39 333 111 2201"),
	},
	{
		ID:          "marco-rossi",
		Name:        "Marco Rossi",
		Specialty:   "Strength training",
		Image:       "/images/trainers/marco.jpg",
		Description: "Powerlifting background, individual strength programs.",
		Rating:      4.8,
		Phone:       ptr.Ptr("+39 333 111 2202"),
	},
	{
		ID:          "giulia-bianchi",
		Name:        "Giulia Bianchi",
		Specialty:   "Pilates",
		Image:       "/images/trainers/giulia.jpg",
		Description: "Mat and reformer pilates, posture correction.",
		Rating:      4.9,
		Phone:       ptr.Ptr("+39 333 111 2203"),
	},
	{
		ID:          "andrea-conti",
		Name:        "Andrea Conti",
		Specialty:   "CrossFit",
		Image:       "/images/trainers/andrea.jpg",
		Description: "CrossFit L2 trainer, group and personal sessions.",
		Rating:      4.7,
		Phone:       ptr.Ptr("+39 333 111 2204"),
	},
	{
		ID:          "sara-moretti",
		Name:        "Sara Moretti",
		Specialty:   "Yoga",
		Image:       "/images/trainers/sara.jpg",
		Description: "Hatha and vinyasa yoga, breathing techniques.",
		Rating:      4.8,
		Phone:       ptr.Ptr("+39 333 111 2205"),
	},
}

// Сетка по будням совпадает с дефолтной, суббота короче и разбита
// на утренний и вечерний блоки. Воскресенье выходной.
var saturdayTimes = []types.TimeString{
	"08:00", "09:30", "11:00", "16:00", "17:30", "19:00",
}

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to ping database: %v\n", err)
		os.Exit(1)
	}

	trainerRepo := trainerstorage.NewRepository(db)
	scheduleRepo := schedulestorage.NewRepository(db)

	for _, t := range trainers {
		created, err := trainerRepo.CreateIfAbsent(ctx, t)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to seed trainer %s: %v\n", t.ID, err)
			os.Exit(1)
		}
		if created {
			fmt.Printf("trainer %s created\n", t.ID)
		}

		added, err := seedSchedule(ctx, scheduleRepo, t.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to seed schedule for %s: %v\n", t.ID, err)
			os.Exit(1)
		}
		if added > 0 {
			fmt.Printf("trainer %s: %d schedule entries added\n", t.ID, added)
		}
	}

	fmt.Println("seed complete")
}

func seedSchedule(ctx context.Context, repo *schedulestorage.Repository, trainerID string) (int, error) {
	added := 0
	for weekday := domain.MinWeekday; weekday <= domain.MaxWeekday; weekday++ {
		var times []types.TimeString
		switch weekday {
		case 6: // воскресенье
			continue
		case 5: // суббота
			times = saturdayTimes
		default:
			times = domain.DefaultScheduleTimes
		}

		for _, t := range times {
			created, err := repo.CreateEntryIfAbsent(ctx, &domain.ScheduleEntry{
				TrainerID: trainerID,
				Weekday:   weekday,
				Time:      t,
			})
			if err != nil {
				return added, err
			}
			if created {
				added++
			}
		}
	}
	return added, nil
}
