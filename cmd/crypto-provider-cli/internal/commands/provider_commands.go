package commands

import (
	"fmt"
	"strings"

	cryptoDomain "github.com/MGTheTrain/crypto-provider/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-provider/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// ProviderCommandHandler encapsulates logic for inspecting registered providers via CLI.
type ProviderCommandHandler struct {
	registry cryptoDomain.Registry
	crypto   cryptoDomain.Crypto
	logger   logger.Logger
}

// NewProviderCommandHandler initializes a ProviderCommandHandler over the process-wide registry.
func NewProviderCommandHandler() (*ProviderCommandHandler, error) {
	env, err := setupEnvironment()
	if err != nil {
		return nil, err
	}

	return &ProviderCommandHandler{
		registry: env.registry,
		crypto:   env.adapter,
		logger:   env.logger,
	}, nil
}

// ListProvidersCmd prints the registered providers and the provider backing the facade
func (commandHandler *ProviderCommandHandler) ListProvidersCmd(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()

	active := commandHandler.crypto.Provider()
	activeListed := false

	for _, provider := range commandHandler.registry.Providers() {
		marker := " "
		if provider == active {
			marker = "*"
			activeListed = true
		}
		_, _ = fmt.Fprintf(out, "%s %s %s - %s\n", marker, provider.Name(), provider.Version(), provider.Info())
	}

	if !activeListed {
		_, _ = fmt.Fprintf(out, "* %s %s - %s (unregistered)\n", active.Name(), active.Version(), active.Info())
	}
}

// ProviderInfoCmd prints the services offered by a provider
func (commandHandler *ProviderCommandHandler) ProviderInfoCmd(cmd *cobra.Command, _ []string) {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		commandHandler.logger.Error("invalid name flag ", err)
		return
	}

	provider := commandHandler.crypto.Provider()
	if name != "" && name != provider.Name() {
		registered, ok := commandHandler.registry.Provider(name)
		if !ok {
			commandHandler.logger.Error(fmt.Errorf("%w: %s", cryptoDomain.ErrProviderNotFound, name))
			return
		}
		provider = registered
	}

	info := cryptoDomain.DescribeProvider(provider)
	if err := info.Validate(); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Name:    %s\n", info.Name)
	_, _ = fmt.Fprintf(out, "Version: %s\n", info.Version)
	_, _ = fmt.Fprintf(out, "Info:    %s\n", info.Info)

	for _, serviceType := range cryptoDomain.ServiceTypes {
		_, _ = fmt.Fprintf(out, "%s: %s\n", serviceType, strings.Join(info.Services[serviceType], ", "))
	}
}

// InitProviderCommands registers provider inspection commands
func InitProviderCommands(rootCmd *cobra.Command) error {
	handler, err := NewProviderCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create provider command handler: %w", err)
	}

	registerProviderCommands(rootCmd, handler)
	return nil
}

func registerProviderCommands(rootCmd *cobra.Command, handler *ProviderCommandHandler) {
	var listProvidersCmd = &cobra.Command{
		Use:   "list-providers",
		Short: "List registered cryptography providers",
		Run:   handler.ListProvidersCmd,
	}
	rootCmd.AddCommand(listProvidersCmd)

	var providerInfoCmd = &cobra.Command{
		Use:   "provider-info",
		Short: "Show the services offered by a provider",
		Run:   handler.ProviderInfoCmd,
	}
	providerInfoCmd.Flags().StringP("name", "", "", "Provider name (defaults to the XCrypto provider)")
	rootCmd.AddCommand(providerInfoCmd)
}
