package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/themizzi/shopcheck/internal/api"
	"github.com/themizzi/shopcheck/internal/browser"
	"github.com/themizzi/shopcheck/internal/campaigns"
	internalcli "github.com/themizzi/shopcheck/internal/cli"
	"github.com/themizzi/shopcheck/internal/config"
	"github.com/themizzi/shopcheck/internal/database"
	"github.com/themizzi/shopcheck/internal/fixtures"
	"github.com/themizzi/shopcheck/internal/pages/bo"
	"github.com/themizzi/shopcheck/internal/pages/fo"
	"github.com/themizzi/shopcheck/internal/report"
	"github.com/themizzi/shopcheck/internal/repository"
	"github.com/themizzi/shopcheck/internal/services"
)

var version = "0.1.0"

var campaignFlag = &cli.StringSliceFlag{
	Name:    "campaign",
	Aliases: []string{"c"},
	Usage:   "base context glob of the campaigns to select, all when empty",
	EnvVars: []string{"CAMPAIGNS"},
}

// loadBrowserConfig loads the browser configuration and applies flag overrides
func loadBrowserConfig(c *cli.Context) (*config.BrowserConfig, error) {
	browserConfig, err := config.LoadBrowserConfig(os.Getenv)
	if err != nil {
		return nil, fmt.Errorf("invalid browser configuration: %w", err)
	}
	if c.IsSet("browser") {
		browserConfig.Name = c.String("browser")
	}
	if c.IsSet("headed") {
		browserConfig.Headless = !c.Bool("headed")
	}
	return browserConfig, nil
}

// buildRecorder connects to the results database and opens a run
func buildRecorder(shop *config.ShopConfig, selected []campaigns.Campaign) (*report.Database, error) {
	if err := database.Connect(os.Getenv); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Connected to database successfully")

	if err := database.RunMigrations(); err != nil {
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	contexts := make([]string, 0, len(selected))
	for _, c := range selected {
		contexts = append(contexts, c.BaseContext)
	}
	service := services.NewResultService(repository.NewRunRepository())
	return report.StartRun(service, shop.FrontOfficeURL, contexts)
}

// RunCommand returns the run command
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run campaigns against the shop",
		Flags: []cli.Flag{
			campaignFlag,
			&cli.IntFlag{Name: "parallel", Aliases: []string{"p"}, Value: 1, Usage: "campaigns run at the same time", EnvVars: []string{"PARALLEL"}},
			&cli.Int64Flag{Name: "seed", Usage: "fixtures seed, random when 0", EnvVars: []string{"FIXTURES_SEED"}},
			&cli.StringFlag{Name: "browser", Usage: "chromium, firefox or webkit"},
			&cli.BoolFlag{Name: "headed", Usage: "show the browser window"},
			&cli.BoolFlag{Name: "record", Usage: "store results in PostgreSQL", EnvVars: []string{"RECORD_RESULTS"}},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "print step identifiers and logs"},
			&cli.BoolFlag{Name: "no-color", Usage: "disable colored output", EnvVars: []string{"NO_COLOR"}},
		},
		Action: func(c *cli.Context) error {
			shop, err := config.LoadShopConfig(os.Getenv)
			if err != nil {
				return fmt.Errorf("missing required shop configuration: %w", err)
			}
			browserConfig, err := loadBrowserConfig(c)
			if err != nil {
				return err
			}
			selected, err := campaigns.Select(c.StringSlice("campaign")...)
			if err != nil {
				return err
			}

			seed := c.Int64("seed")
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			log.Printf("Fixtures seed: %d", seed)

			manager, err := browser.Launch(browserConfig)
			if err != nil {
				return err
			}
			defer func() {
				if err := manager.Close(); err != nil {
					log.Printf("Failed to close browser: %v", err)
				}
			}()

			deps := internalcli.RunDependencies{
				Shop:       shop,
				Timeouts:   manager.Timeouts(),
				Campaigns:  selected,
				NewSession: manager.Sessions(),
				Console:    report.NewConsole(os.Stdout, c.Bool("verbose"), c.Bool("no-color")),
				Parallel:   c.Int("parallel"),
				Seed:       seed,
			}
			if c.Bool("record") {
				defer database.Close()
				if deps.Recorder, err = buildRecorder(shop, selected); err != nil {
					return err
				}
			}

			_, err = internalcli.RunCampaigns(deps)
			return err
		},
	}
}

// ListCommand returns the list command
func ListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the available campaigns",
		Flags: []cli.Flag{campaignFlag},
		Action: func(c *cli.Context) error {
			selected, err := campaigns.Select(c.StringSlice("campaign")...)
			if err != nil {
				return err
			}

			// Suites are only built to be counted, nothing reaches a shop
			shop := &config.ShopConfig{}
			timeouts := browser.Timeouts(&config.BrowserConfig{})
			internalcli.ListCampaigns(os.Stdout, selected, campaigns.Deps{
				Shop:     shop,
				BO:       bo.New(shop, timeouts),
				FO:       fo.New(shop, timeouts),
				Fixtures: fixtures.NewGenerator(1),
			})
			return nil
		},
	}
}

// TokenCommand returns the token command
func TokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Request an admin API access token with the client credentials grant",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "client-id", Required: true, EnvVars: []string{"API_CLIENT_ID"}},
			&cli.StringFlag{Name: "client-secret", Required: true, EnvVars: []string{"API_CLIENT_SECRET"}},
			&cli.StringSliceFlag{Name: "scope", Usage: "scope to request, repeatable"},
		},
		Action: func(c *cli.Context) error {
			shop, err := config.LoadShopConfig(os.Getenv)
			if err != nil {
				return fmt.Errorf("missing required shop configuration: %w", err)
			}

			return internalcli.PrintToken(c.Context, os.Stdout, shop.APIURL, api.Credentials{
				ClientID:     c.String("client-id"),
				ClientSecret: c.String("client-secret"),
				Scopes:       c.StringSlice("scope"),
			})
		},
	}
}

// InstallCommand returns the install command
func InstallCommand() *cli.Command {
	return &cli.Command{
		Name:      "install",
		Usage:     "Install the playwright driver and browsers",
		ArgsUsage: "[browser...]",
		Action: func(c *cli.Context) error {
			browsers := c.Args().Slice()
			if len(browsers) == 0 {
				browserConfig, err := config.LoadBrowserConfig(os.Getenv)
				if err != nil {
					return fmt.Errorf("invalid browser configuration: %w", err)
				}
				browsers = []string{browserConfig.Name}
			}
			return browser.Install(browsers...)
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "uitests",
		Usage:   "Storefront and back office UI campaigns",
		Version: version,
		Commands: []*cli.Command{
			RunCommand(),
			ListCommand(),
			TokenCommand(),
			InstallCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Fatal(err)
	}
}
