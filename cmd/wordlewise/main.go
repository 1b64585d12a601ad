package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/mitchellh/colorstring"
	"github.com/schollz/progressbar/v3"

	"github.com/cognicore/wordlewise/pkg/wordlewise"
	"github.com/cognicore/wordlewise/pkg/wordlewise/config"
	"github.com/cognicore/wordlewise/pkg/wordlewise/feedback"
	"github.com/cognicore/wordlewise/pkg/wordlewise/store"
	"github.com/cognicore/wordlewise/pkg/wordlewise/store/sqlite"
	"github.com/cognicore/wordlewise/pkg/wordlewise/wordlist"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file; flags below are ignored when set")
		length     = flag.Int("length", 5, "word length")
		allowedSrc = flag.String("allowed", "", "allowed-guess list: file path or URL")
		answersSrc = flag.String("answers", "", "answer list: file path or URL")
		cachePath  = flag.String("cache", "", "SQLite cache for downloaded lists (optional)")
		onlyAlpha  = flag.Bool("only-alpha", true, "keep only purely alphabetic words")
		topK       = flag.Int("topk", 10, "default number of suggestions")
		strategy   = flag.String("strategy", "heuristic", "default scoring strategy: heuristic or exact")
		poolName   = flag.String("pool", "answers", "default guess pool: allowed or answers")
		debug      = flag.Bool("debug", false, "dump frequency statistics after each hint")
	)
	flag.Parse()

	cfg, err := buildConfig(*configPath, *length, *allowedSrc, *answersSrc, *cachePath, *onlyAlpha, *topK, *strategy, *poolName)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	var cache store.Store
	if cfg.CachePath != "" {
		cache, err = sqlite.Open(ctx, cfg.CachePath)
		if err != nil {
			log.Fatalf("open cache: %v", err)
		}
		defer cache.Close()
	}

	loader := &wordlist.Loader{Cache: cache, Length: cfg.Length, OnlyAlpha: cfg.OnlyAlpha}
	allowed, err := loader.Load(ctx, cfg.Lists.Allowed)
	if err != nil {
		log.Fatal(err)
	}
	answers, err := loader.Load(ctx, cfg.Lists.Answers)
	if err != nil {
		log.Fatal(err)
	}

	adv, err := wordlewise.New(wordlewise.Options{
		Length:  cfg.Length,
		Allowed: allowed,
		Answers: answers,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("===========================================")
	fmt.Println("  Wordlewise Advisor")
	fmt.Printf("  session %s\n", adv.ID())
	fmt.Println("===========================================")
	fmt.Println()
	fmt.Printf("%d allowed words, %d possible answers\n", len(allowed), len(answers))
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  hint <word> <label>                  record feedback (label digits: 0 absent, 1 present, 2 correct)")
	fmt.Println("  predict [k] [strategy] [pool] [wide] rank guesses; 'wide' searches the unpruned pool")
	fmt.Println("  candidates                           list remaining answers")
	fmt.Println("  stats                                show candidate letter statistics")
	fmt.Println("  quit                                 exit (or Ctrl+D)")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		args := strings.Fields(line)
		switch args[0] {
		case "hint":
			if err := runHint(adv, args[1:], *debug); err != nil {
				fmt.Println("Error:", err)
			}
		case "predict":
			if err := runPredict(ctx, adv, cfg, args[1:]); err != nil {
				fmt.Println("Error:", err)
			}
		case "candidates":
			printCandidates(adv)
		case "stats":
			spew.Dump(adv.Stats())
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q\n", args[0])
		}
	}
}

func buildConfig(path string, length int, allowed, answers, cache string, onlyAlpha bool, topK int, strategy, pool string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	var cfg config.Config
	cfg.Length = length
	cfg.OnlyAlpha = onlyAlpha
	cfg.CachePath = cache
	cfg.Lists.Allowed = allowed
	cfg.Lists.Answers = answers
	cfg.Defaults.TopK = topK
	cfg.Defaults.Strategy = strategy
	cfg.Defaults.Pool = pool
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func runHint(adv *wordlewise.Advisor, args []string, debug bool) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: hint <word> <label>")
	}
	word, label := args[0], args[1]

	if err := adv.AddHint(word, label); err != nil {
		return err
	}

	pattern, _ := feedback.Parse(label)
	fmt.Println(coloredHint(word, pattern))
	fmt.Printf("%d candidates remain\n", len(adv.Candidates()))
	if debug {
		spew.Dump(adv.Stats())
	}
	return nil
}

func runPredict(ctx context.Context, adv *wordlewise.Advisor, cfg *config.Config, args []string) error {
	req := wordlewise.PredictRequest{
		K:        cfg.Defaults.TopK,
		Strategy: wordlewise.StrategyName(cfg.Defaults.Strategy),
		Pool:     wordlewise.Pool(cfg.Defaults.Pool),
	}

	for _, arg := range args {
		switch arg {
		case "heuristic", "exact":
			req.Strategy = wordlewise.StrategyName(arg)
		case "allowed", "answers":
			req.Pool = wordlewise.Pool(arg)
		case "wide":
			req.IgnoreHints = true
		default:
			k, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("unknown predict argument %q", arg)
			}
			req.K = k
		}
	}

	// The exact scorer is quadratic-ish; show progress on big passes.
	total := adv.PoolSize(req.Pool, req.IgnoreHints)
	if req.Strategy == wordlewise.StrategyExact && total > 500 {
		bar := progressbar.Default(int64(total), "scoring")
		req.Progress = func(n int) { bar.Add(n) }
	}

	suggestions, err := adv.Predict(ctx, req)
	if err != nil {
		return err
	}

	for i, s := range suggestions {
		fmt.Printf("%3d  WORD: %s\tSCORE: %.4f\n", i+1, s.Word, s.Score)
	}
	return nil
}

func printCandidates(adv *wordlewise.Advisor) {
	candidates := adv.Candidates()
	fmt.Printf("%d candidates\n", len(candidates))
	// Only print the list once it is small enough to read.
	if len(candidates) <= 50 {
		for _, w := range candidates {
			fmt.Println("  " + w)
		}
	}
}

func coloredHint(word string, pattern feedback.Pattern) string {
	var b strings.Builder
	for i := 0; i < len(word) && i < len(pattern); i++ {
		letter := string(word[i])
		switch pattern[i] {
		case feedback.Correct:
			b.WriteString(colorstring.Color("[green]" + letter))
		case feedback.Present:
			b.WriteString(colorstring.Color("[yellow]" + letter))
		default:
			b.WriteString(colorstring.Color("[dark_gray]" + letter))
		}
	}
	return b.String()
}
