package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"cardcatalog"
	"cardcatalog/log"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "cardcatalog INPUT_DIR OUTPUT_FILE",
	Short: "Render a card dataset as a plain-text catalog",
	Long: `Cardcatalog reads a card dataset stored as three XML documents
(cards.xml, setinfo.xml and meta.xml) from INPUT_DIR and writes a
plain-text catalog to OUTPUT_FILE: a set index followed by every card
with its rule text and set/rarity print history.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := setupLogger()
		defer func() {
			// logger.Sync() can fail even when the logs were properly
			// displayed, don't check its return value
			_ = logger.Sync()
		}()

		return cardcatalog.Run(args[0], args[1])
	},
}

func init() {
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func setupLogger() *zap.Logger {
	var zapConf zap.Config

	if debug {
		zapConf = zap.NewDevelopmentConfig()
		zapConf.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	} else {
		zapConf = zap.NewProductionConfig()
		zapConf.Encoding = "console"
		zapConf.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
		zapConf.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
		zapConf.EncoderConfig.EncodeCaller = nil
	}

	// Skip 1 caller, since all log calls go through cardcatalog/log
	logger, err := zapConf.Build(zap.AddCallerSkip(1))
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	log.SetLogger(logger.Sugar())

	return logger
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
