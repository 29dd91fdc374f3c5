// Command seed fills the database with synthetic users and courses for
// local development and tests.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/bootstrap"
	"github.com/yigit/coursehub/internal/pkg/logger"
	"github.com/yigit/coursehub/internal/seed"
)

func main() {
	amount := &cli.IntFlag{
		Name:    "amount",
		Aliases: []string{"n"},
		Value:   1,
		Usage:   "how many records to create",
	}

	app := &cli.App{
		Name:  "seed",
		Usage: "seed the CourseHub database with fake data",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: bootstrap.DefaultConfigPath,
				Usage: "path to the YAML config file",
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "random seed; 0 picks one from the clock",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "clean",
				Usage: "delete every row the seeder can create",
				Action: withSeeder(func(c *cli.Context, s *seed.Seeder, lgr zerolog.Logger) error {
					return s.CleanDatabase(c.Context)
				}),
			},
			{
				Name:  "courses",
				Usage: "create courses with units and assignments",
				Flags: []cli.Flag{amount},
				Action: withSeeder(func(c *cli.Context, s *seed.Seeder, lgr zerolog.Logger) error {
					courses, err := s.CreatePersistentCourse(c.Context, c.Int("amount"))
					if err != nil {
						return err
					}
					lgr.Info().Int("count", len(courses)).Msg("Courses created")
					return nil
				}),
			},
			{
				Name:  "students",
				Usage: "create student users",
				Flags: []cli.Flag{amount},
				Action: withSeeder(func(c *cli.Context, s *seed.Seeder, lgr zerolog.Logger) error {
					users, err := s.CreatePersistentStudent(c.Context, c.Int("amount"))
					if err != nil {
						return err
					}
					lgr.Info().Int("count", len(users)).Str("password", seed.DefaultPassword).Msg("Students created")
					return nil
				}),
			},
			{
				Name:  "instructors",
				Usage: "create instructor users",
				Flags: []cli.Flag{amount},
				Action: withSeeder(func(c *cli.Context, s *seed.Seeder, lgr zerolog.Logger) error {
					users, err := s.CreatePersistentInstructor(c.Context, c.Int("amount"))
					if err != nil {
						return err
					}
					lgr.Info().Int("count", len(users)).Str("password", seed.DefaultPassword).Msg("Instructors created")
					return nil
				}),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("Seeding failed")
		os.Exit(1)
	}
}

type seedAction func(c *cli.Context, s *seed.Seeder, lgr zerolog.Logger) error

// withSeeder loads the config, connects, migrates and hands a Seeder to fn
func withSeeder(fn seedAction) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(c.String("config"))
		if err != nil {
			return err
		}

		database, err := bootstrap.SetupDatabase(c.Context, cfg, lgr)
		if err != nil {
			return err
		}
		defer database.Close()

		seedValue := c.Uint64("seed")
		if seedValue == 0 {
			seedValue = uint64(time.Now().UnixNano())
		}
		factory, err := seed.NewFactory(seedValue)
		if err != nil {
			return fmt.Errorf("failed to build factory: %w", err)
		}

		lgr = lgr.With().Uint64("seed", seedValue).Logger()
		seeder := seed.NewSeeder(database, repositories.NewRepositories(database.Pool), factory, lgr)
		return fn(c, seeder, lgr)
	}
}
