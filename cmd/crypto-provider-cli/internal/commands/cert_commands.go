package commands

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cryptoDomain "github.com/MGTheTrain/crypto-provider/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-provider/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// CertCommandHandler encapsulates logic for inspecting certificates via CLI.
type CertCommandHandler struct {
	crypto cryptoDomain.Crypto
	logger logger.Logger
}

// NewCertCommandHandler initializes a CertCommandHandler over the XCrypto adapter.
func NewCertCommandHandler() (*CertCommandHandler, error) {
	env, err := setupEnvironment()
	if err != nil {
		return nil, err
	}

	return &CertCommandHandler{
		crypto: env.adapter,
		logger: env.logger,
	}, nil
}

// InspectCertCmd prints the certificates found in a PEM or DER file
func (commandHandler *CertCommandHandler) InspectCertCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}

	data, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	certs, err := commandHandler.crypto.CertFactory().GenerateCertificates(data)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	out := cmd.OutOrStdout()
	for i, cert := range certs {
		fingerprint := sha256.Sum256(cert.Raw)

		_, _ = fmt.Fprintf(out, "Certificate %d\n", i+1)
		_, _ = fmt.Fprintf(out, "  Subject:     %s\n", cert.Subject)
		_, _ = fmt.Fprintf(out, "  Issuer:      %s\n", cert.Issuer)
		_, _ = fmt.Fprintf(out, "  Serial:      %s\n", cert.SerialNumber)
		_, _ = fmt.Fprintf(out, "  Not Before:  %s\n", cert.NotBefore.UTC().Format(time.RFC3339))
		_, _ = fmt.Fprintf(out, "  Not After:   %s\n", cert.NotAfter.UTC().Format(time.RFC3339))
		_, _ = fmt.Fprintf(out, "  SHA-256:     %s\n", hex.EncodeToString(fingerprint[:]))
	}

	commandHandler.logger.Info("Parsed ", len(certs), " certificate(s) from ", inputFile)
}

// InitCertCommands registers certificate commands
func InitCertCommands(rootCmd *cobra.Command) error {
	handler, err := NewCertCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create certificate command handler: %w", err)
	}

	registerCertCommands(rootCmd, handler)
	return nil
}

func registerCertCommands(rootCmd *cobra.Command, handler *CertCommandHandler) {
	var inspectCertCmd = &cobra.Command{
		Use:   "inspect-cert",
		Short: "Inspect X.509 certificates in a PEM or DER file",
		Run:   handler.InspectCertCmd,
	}
	inspectCertCmd.Flags().StringP("input-file", "", "", "Path to certificate file")
	rootCmd.AddCommand(inspectCertCmd)
}
