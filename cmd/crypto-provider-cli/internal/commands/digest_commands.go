package commands

import (
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"

	cryptoDomain "github.com/MGTheTrain/crypto-provider/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-provider/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// DigestCommandHandler encapsulates logic for message digests and HMACs via CLI.
type DigestCommandHandler struct {
	crypto cryptoDomain.Crypto
	logger logger.Logger
}

// NewDigestCommandHandler initializes a DigestCommandHandler over the XCrypto adapter.
func NewDigestCommandHandler() (*DigestCommandHandler, error) {
	env, err := setupEnvironment()
	if err != nil {
		return nil, err
	}

	return &DigestCommandHandler{
		crypto: env.adapter,
		logger: env.logger,
	}, nil
}

// DigestCmd prints the hex digest of a file
func (commandHandler *DigestCommandHandler) DigestCmd(cmd *cobra.Command, _ []string) {
	request, ok := commandHandler.digestRequest(cmd)
	if !ok {
		return
	}

	h, err := commandHandler.crypto.Digest(request.Algorithm)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.printSum(cmd, h, request)
}

// HmacCmd prints the hex HMAC of a file keyed with the contents of the key file
func (commandHandler *DigestCommandHandler) HmacCmd(cmd *cobra.Command, _ []string) {
	request, ok := commandHandler.digestRequest(cmd)
	if !ok {
		return
	}
	if request.KeyFile == "" {
		commandHandler.logger.Error("key-file is required")
		return
	}

	key, err := os.ReadFile(filepath.Clean(request.KeyFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	h, err := commandHandler.crypto.Mac(request.Algorithm, key)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.printSum(cmd, h, request)
}

func (commandHandler *DigestCommandHandler) digestRequest(cmd *cobra.Command) (*DigestRequest, bool) {
	algorithm, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		commandHandler.logger.Error("invalid algorithm flag ", err)
		return nil, false
	}
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return nil, false
	}

	request := &DigestRequest{
		Algorithm: algorithm,
		InputFile: inputFile,
	}
	if cmd.Flags().Lookup("key-file") != nil {
		if request.KeyFile, err = cmd.Flags().GetString("key-file"); err != nil {
			commandHandler.logger.Error("invalid key-file flag ", err)
			return nil, false
		}
	}

	if err := request.Validate(); err != nil {
		commandHandler.logger.Error(err)
		return nil, false
	}
	return request, true
}

func (commandHandler *DigestCommandHandler) printSum(cmd *cobra.Command, h hash.Hash, request *DigestRequest) {
	file, err := os.Open(filepath.Clean(request.InputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			commandHandler.logger.Warn("failed to close file: ", err)
		}
	}()

	if _, err := io.Copy(h, file); err != nil {
		commandHandler.logger.Error("failed to read input file ", err)
		return
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", hex.EncodeToString(h.Sum(nil)), request.InputFile)
	commandHandler.logger.Debug(request.Algorithm, " computed for ", request.InputFile)
}

// InitDigestCommands registers digest and HMAC commands
func InitDigestCommands(rootCmd *cobra.Command) error {
	handler, err := NewDigestCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create digest command handler: %w", err)
	}

	registerDigestCommands(rootCmd, handler)
	return nil
}

func registerDigestCommands(rootCmd *cobra.Command, handler *DigestCommandHandler) {
	var digestCmd = &cobra.Command{
		Use:   "digest",
		Short: "Compute the message digest of a file",
		Run:   handler.DigestCmd,
	}
	digestCmd.Flags().StringP("algorithm", "", cryptoDomain.DigestSHA256, "Digest algorithm, e.g. SHA-256 or SHA3-256")
	digestCmd.Flags().StringP("input-file", "", "", "Path to input file")
	rootCmd.AddCommand(digestCmd)

	var hmacCmd = &cobra.Command{
		Use:   "hmac",
		Short: "Compute the HMAC of a file",
		Run:   handler.HmacCmd,
	}
	hmacCmd.Flags().StringP("algorithm", "", cryptoDomain.MacHmacSHA256, "MAC algorithm, e.g. HmacSHA256")
	hmacCmd.Flags().StringP("input-file", "", "", "Path to input file")
	hmacCmd.Flags().StringP("key-file", "", "", "Path to MAC key file")
	rootCmd.AddCommand(hmacCmd)
}
