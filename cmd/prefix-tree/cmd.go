package main

import (
	"fmt"
	"io"
	"strings"

	prefixtree "github.com/datnguyenzzz/nogodb/lib/go-prefix-tree"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "PREFIX_TREE"

const (
	modeRaw   = "raw"
	modeWords = "words"
)

var demoWords = []string{"the", "a", "there", "any", "answer", "by", "bye", "their"}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:           "prefix-tree",
		Short:         "Builds a prefix tree from a word list and dumps it",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(v.GetString("log-level"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			tree := buildTree(v.GetStringSlice("words"))
			return dump(tree, v.GetString("mode"), cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().StringSlice("words", demoWords, "Words to insert, in order")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.Flags().String("mode", modeRaw, "Dump mode: raw or words")
	_ = v.BindPFlags(rootCmd.PersistentFlags())
	_ = v.BindPFlags(rootCmd.Flags())

	rootCmd.AddCommand(
		newQueryCmd(v, "search", "Reports whether each query was inserted as a whole word",
			func(t *prefixtree.Tree, q string) bool { return t.Search(q) }),
		newQueryCmd(v, "starts-with", "Reports whether some inserted word starts with each query",
			func(t *prefixtree.Tree, q string) bool { return t.StartsWith(q) }),
	)

	return rootCmd
}

func newQueryCmd(v *viper.Viper, use, short string, query func(*prefixtree.Tree, string) bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <query>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree := buildTree(v.GetStringSlice("words"))
			for _, q := range args {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%q: %v\n", q, query(tree, q)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func buildTree(words []string) *prefixtree.Tree {
	tree := prefixtree.NewTree()
	for _, w := range words {
		tree.Insert(w)
	}
	zap.L().Info("prefix tree built", zap.Int("words", len(words)))
	return tree
}

func dump(tree *prefixtree.Tree, mode string, w io.Writer) error {
	switch mode {
	case modeRaw:
		return tree.PrintRaw(w)
	case modeWords:
		return tree.Print(w)
	default:
		return fmt.Errorf("unsupported dump mode %q, expect %q or %q", mode, modeRaw, modeWords)
	}
}

func setupLogger(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	return nil
}
