// Package main is the entry point for the crypto-provider-cli application.
// It resolves the XCrypto provider, registers the provider, cipher, digest and certificate
// sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MGTheTrain/crypto-provider/cmd/crypto-provider-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "crypto-provider-cli",
		Short: "Cryptography provider CLI tool",
		Long: `crypto-provider-cli exposes the XCrypto provider through the generic cryptography facade.
Supports provider inspection, RSA/AES/ChaCha20 encryption, message digests, HMACs and
X.509 certificate inspection. A bare "RSA" cipher means RSA/NONE/PKCS1Padding.

Settings are read from a .env file and the environment:
- CRYPTO_PROVIDER_CONFIG_FILE (optional YAML settings file)
- CRYPTO_PROVIDER_LOG_LEVEL, CRYPTO_PROVIDER_LOG_TYPE, CRYPTO_PROVIDER_LOG_FILE
- CRYPTO_PROVIDER_INSTALL (register the XCrypto provider when missing)
- CRYPTO_PROVIDER_RSA_KEY_SIZE, CRYPTO_PROVIDER_KEY_DIR`,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitProviderCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize provider commands: %w", err)
	}

	if err := commands.InitCipherCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize cipher commands: %w", err)
	}

	if err := commands.InitDigestCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize digest commands: %w", err)
	}

	if err := commands.InitCertCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize certificate commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
