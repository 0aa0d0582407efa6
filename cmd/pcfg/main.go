// Command pcfg loads probabilistic context-free grammars, parses sentence
// files with the CKY algorithm, and scores parser output against reference
// trees.
//
// Usage:
//
//	pcfg check -g grammar.gr [--strict] [--tolerance 1e-9]
//	pcfg parse -g grammar.gr -i sentences.txt [-o out.trees] [--start S] [--workers N] [--logprob]
//	pcfg evaluate --pred out.trees --gold gold.trees [--preterminals] [--no-root]
//
// Configuration: every verb reads its flag defaults from, in rising
// precedence, a YAML file named by PCFG_CONFIG, then PCFG_GRAMMAR,
// PCFG_START, PCFG_WORKERS, PCFG_TOLERANCE environment variables (a .env
// file in the working directory is honored), then the flags themselves.
//
// Exit status is 0 on success and 1 on any validation, usage, or I/O
// failure. Sentences that simply fail to parse are reported in the output
// as NOPARSE lines and do not affect the exit status.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load(".env")
	cfg, err := loadConfig(os.Getenv("PCFG_CONFIG"))
	if err != nil {
		log.Fatal(err)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "pcfg",
		Short:         "probabilistic CKY parsing toolkit",
		Long:          "pcfg checks PCFG grammar files, parses sentences with the CKY algorithm,\nand evaluates predicted trees against a gold standard.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(
		newCheckCmd(cfg),
		newParseCmd(cfg),
		newEvaluateCmd(),
	)
	return root
}
