package main

import (
	"fmt"
	"os"
	"strings"

	"griddle/app/config"
	"griddle/app/logger"
	"griddle/app/repositories"
	"griddle/routes"

	"github.com/dgraph-io/badger/v4"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch strings.ToLower(os.Args[1]) {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("griddle version %s\n", cliVersion)
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: griddle <command>
Commands:
  help       Display this help message.
  version    Show version information.
  serve      Run the blog API server (configured via GRIDDLE_* env vars).
`
	fmt.Println(helpText)
}

// serve loads configuration, opens the configured store and runs the HTTP
// server until it exits.
func serve() {
	cfg := config.Load()
	logger.Init(cfg.Env)
	log := logger.Get()

	var postRepo repositories.PostRepository
	var commentRepo repositories.CommentRepository

	switch cfg.Store {
	case config.StoreSQLite:
		db, err := repositories.NewSQLiteDB(cfg.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.SQLitePath).Msg("failed to open sqlite database")
		}
		postRepo = repositories.NewGormPostRepository(db)
		commentRepo = repositories.NewGormCommentRepository(db)
	case config.StoreBadger:
		opts := badger.DefaultOptions(cfg.BadgerPath).WithLogger(nil)
		db, err := badger.Open(opts)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.BadgerPath).Msg("failed to open badger database")
		}
		defer db.Close()
		postRepo = repositories.NewBadgerPostRepository(db)
		commentRepo = repositories.NewBadgerCommentRepository(db)
	default:
		log.Fatal().Str("store", cfg.Store).Msg("unknown store engine")
	}

	router := routes.Setup(postRepo, commentRepo)
	log.Info().Str("addr", cfg.Addr).Str("store", cfg.Store).Msg("starting griddle API")
	if err := routes.StartServer(cfg.Addr, router); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
