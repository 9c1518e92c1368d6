package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/NickyBoy89/methodparser/scan"
	"github.com/NickyBoy89/methodparser/signature"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	config := viper.New()

	rootCmd := &cobra.Command{
		Use:   "methodparser",
		Short: "Parse Java method signatures",
		Long:  "methodparser breaks Java-like method signatures into their access modifier, return type, name and arguments.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if config.GetBool("verbose") {
				log.SetLevel(log.DebugLevel)
			}
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Bool("strict", false, "Reject headers and arguments that the parser would otherwise guess at")
	rootCmd.PersistentFlags().String("format", "json", "Output format, either json or yaml")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Additional debug info")

	config.BindPFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))
	config.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	config.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// METHODPARSER_STRICT, METHODPARSER_FORMAT, METHODPARSER_VERBOSE
	config.SetEnvPrefix("METHODPARSER")
	config.AutomaticEnv()

	config.SetConfigName(".methodparser")
	config.SetConfigType("yaml")
	config.AddConfigPath(".")
	config.ReadInConfig() // The config file is optional

	rootCmd.AddCommand(newParseCmd(config))
	rootCmd.AddCommand(newScanCmd(config))

	return rootCmd
}

func newParseCmd(config *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "parse SIGNATURE...",
		Short: "Parse method signatures given as arguments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := signature.Parser{Strict: config.GetBool("strict")}

			var failed int
			results := []signature.MethodSignature{}
			for _, source := range args {
				sig, err := parser.Parse(source)
				if err != nil {
					log.WithField("signature", source).Error(err)
					failed++
					continue
				}
				results = append(results, sig)
			}

			if err := writeOutput(cmd.OutOrStdout(), config.GetString("format"), results); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d signatures failed to parse", failed, len(args))
			}
			return nil
		},
	}
}

// scannedFile groups the methods found in one source file
type scannedFile struct {
	File    string        `json:"file" yaml:"file"`
	Methods []scan.Method `json:"methods" yaml:"methods"`
}

func newScanCmd(config *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "scan FILE...",
		Short: "Parse the signature of every method declared in Java files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scanner := scan.Scanner{Parser: signature.Parser{Strict: config.GetBool("strict")}}

			var failed int
			results := []scannedFile{}
			for _, filePath := range args {
				if filepath.Ext(filePath) != ".java" {
					log.Debugf("Skipping file %v", filePath)
					continue // Skips all non-java files
				}
				log.Debugf("Started scanning file %v", filePath)

				methods, err := scanner.File(cmd.Context(), filePath)
				if err != nil {
					log.WithField("file", filePath).Error(err)
					failed++
					continue
				}
				if methods == nil {
					methods = []scan.Method{}
				}

				results = append(results, scannedFile{File: filePath, Methods: methods})
				log.WithFields(log.Fields{
					"file":    filePath,
					"methods": len(methods),
				}).Info("Scanned file")
			}

			if err := writeOutput(cmd.OutOrStdout(), config.GetString("format"), results); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d files failed to scan", failed)
			}
			return nil
		},
	}
}
