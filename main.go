package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	"search-relevance/config"
	"search-relevance/dataset"
	"search-relevance/driver"
	"search-relevance/feature"
	"search-relevance/gateway"
	"search-relevance/logger"
	"search-relevance/planner"
	"search-relevance/port"
	"search-relevance/rerank"
	"search-relevance/rest"
	"search-relevance/rewrite"
	"search-relevance/tokenize"
	"search-relevance/usecase"
)

// Query set used by collection runs when no file is given. Mirrors the fixed
// set the relevance judgments were collected with.
var defaultCollectQueries = []string{
	"зимние шины",
	"новые китайские автомобили",
	"цены на автомобили 2025",
	"повышение транспортного налога",
	"электромобили в России",
	"снижение цен на бензин",
	"какие авто подорожали",
	"продажи автомобилей в России",
	"проверка vin онлайн",
	"новые штрафы для водителей",
}

func main() {
	root := &cobra.Command{
		Use:           "search-relevance",
		Short:         "Query rewriting, reranking and ranking evaluation for the article search index",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd(), collectCmd(), evaluateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildSearchPipeline wires dictionaries, planner, retrieval driver and
// reranker into the search usecase.
func buildSearchPipeline(cfg *config.Config) (*usecase.SearchArticlesUsecase, error) {
	tok, err := tokenize.New()
	if err != nil {
		return nil, fmt.Errorf("init tokenizer: %w", err)
	}

	synDict, err := rewrite.LoadSynonymDict(cfg.Dictionary.SynonymsPath)
	if err != nil {
		return nil, err
	}
	fixDict, err := rewrite.LoadSpellfixDict(cfg.Dictionary.SpellfixPath)
	if err != nil {
		return nil, err
	}

	scorer, err := rerank.LoadScorer(cfg.Reranker.ModelPath)
	if err != nil {
		return nil, err
	}

	spellfix := rewrite.NewSpellfixTable(fixDict)
	synonyms := rewrite.NewSynonymTable(synDict, tok)
	queryPlanner := planner.New(synonyms)
	extractor := feature.NewExtractor(tok)
	reranker := rerank.New(extractor, scorer)

	osDriver := driver.NewOpenSearchDriver(
		cfg.Search.URL,
		cfg.Search.Index,
		cfg.Search.Username,
		cfg.Search.Password,
		cfg.Search.Timeout,
	)
	engine := gateway.NewSearchEngineGateway(osDriver)

	return usecase.NewSearchArticlesUsecase(spellfix, queryPlanner, engine, reranker, logger.Logger), nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the search HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Init()
			cfg := config.Load()

			search, err := buildSearchPipeline(cfg)
			if err != nil {
				return err
			}

			e := echo.New()
			e.HideBanner = true
			e.Use(middleware.Recover())
			rest.NewHandler(search, cfg.Search.Size).Register(e)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			go func() {
				logger.Logger.Info("http listen", "addr", cfg.HTTP.Addr)
				if err := e.Start(cfg.HTTP.Addr); err != nil && err != http.ErrServerClosed {
					logger.Logger.Error("http", "err", err)
				}
			}()

			<-ctx.Done()
			return e.Shutdown(context.Background())
		},
	}
}

func collectCmd() *cobra.Command {
	var (
		run         string
		queriesPath string
		outPath     string
		size        int
	)

	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Run a query set through the pipeline and save results for labeling",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Init()
			cfg := config.Load()

			search, err := buildSearchPipeline(cfg)
			if err != nil {
				return err
			}

			queries := defaultCollectQueries
			if queriesPath != "" {
				queries, err = readQueryFile(queriesPath)
				if err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			var repo *driver.JudgmentDB
			if cfg.Database.URL != "" {
				pool, err := pgxpool.New(ctx, cfg.Database.URL)
				if err != nil {
					return fmt.Errorf("connect to database: %w", err)
				}
				defer pool.Close()
				repo = driver.NewJudgmentDB(pool)
			}

			collector := usecase.NewCollectRunUsecase(search, judgmentRepo(repo), logger.Logger)
			results, err := collector.Execute(ctx, run, queries, size)
			if err != nil {
				return err
			}

			if err := dataset.WriteJudgedCSV(outPath, results); err != nil {
				return err
			}
			logger.Logger.Info("collection written", "path", outPath, "results", len(results))
			return nil
		},
	}

	cmd.Flags().StringVar(&run, "run", "baseline", "collection run name")
	cmd.Flags().StringVar(&queriesPath, "queries", "", "file with one query per line (default: built-in set)")
	cmd.Flags().StringVar(&outPath, "out", "search_results_for_labeling.csv", "output CSV path")
	cmd.Flags().IntVar(&size, "size", 10, "results per query")
	return cmd
}

func evaluateCmd() *cobra.Command {
	var (
		inputPath  string
		reportPath string
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Compute ranking metrics from a labeled result CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Init()

			results, stats, err := dataset.ReadJudgedCSV(inputPath)
			if err != nil {
				return err
			}
			if stats.Skipped > 0 {
				logger.Logger.Warn("some rows were skipped", "skipped", stats.Skipped)
			}

			report := usecase.NewEvaluateRankingUsecase(logger.Logger).Execute(results)

			if err := report.Write(os.Stdout); err != nil {
				return err
			}
			if reportPath != "" {
				if err := report.WriteFile(reportPath); err != nil {
					return err
				}
				logger.Logger.Info("report written", "path", reportPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "search_results_for_labeling.csv", "labeled result CSV")
	cmd.Flags().StringVar(&reportPath, "report", "search_metrics_report.txt", "report output path (empty to skip)")
	return cmd
}

// judgmentRepo keeps a typed nil from reaching the usecase interface field.
func judgmentRepo(repo *driver.JudgmentDB) port.JudgmentRepository {
	if repo == nil {
		return nil
	}
	return repo
}

func readQueryFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open queries file: %w", err)
	}
	defer f.Close()

	var queries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if q := strings.TrimSpace(scanner.Text()); q != "" {
			queries = append(queries, q)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read queries file: %w", err)
	}
	return queries, nil
}
