package commands

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cryptoDomain "github.com/MGTheTrain/crypto-provider/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-provider/internal/pkg/config"
	"github.com/MGTheTrain/crypto-provider/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// CipherCommandHandler encapsulates logic for key generation and encryption via CLI.
type CipherCommandHandler struct {
	crypto   cryptoDomain.Crypto
	settings *config.ProviderSettings
	logger   logger.Logger
}

// NewCipherCommandHandler initializes a CipherCommandHandler over the XCrypto adapter.
func NewCipherCommandHandler() (*CipherCommandHandler, error) {
	env, err := setupEnvironment()
	if err != nil {
		return nil, err
	}

	return &CipherCommandHandler{
		crypto:   env.adapter,
		settings: &env.settings.Provider,
		logger:   env.logger,
	}, nil
}

// GenerateRSAKeysCmd generates an RSA key pair and persists it in the key directory
func (commandHandler *CipherCommandHandler) GenerateRSAKeysCmd(cmd *cobra.Command, _ []string) {
	keySize, err := cmd.Flags().GetUint("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag ", err)
		return
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag ", err)
		return
	}

	request := &KeyGenerationRequest{
		Algorithm: cryptoDomain.AlgorithmRSA,
		KeySize:   commandHandler.orDefaultKeySize(keySize),
		KeyDir:    commandHandler.orDefaultKeyDir(keyDir),
	}
	if err := request.Validate(); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	privateKey, err := rsa.GenerateKey(rand.Reader, int(request.KeySize))
	if err != nil {
		commandHandler.logger.Error("failed to generate RSA key ", err)
		return
	}

	uniqueID := uuid.New()

	privateKeyFilePath := filepath.Join(request.KeyDir, fmt.Sprintf("%s-private-key.pem", uniqueID))
	if err := savePrivateKey(privateKey, privateKeyFilePath); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	publicKeyFilePath := filepath.Join(request.KeyDir, fmt.Sprintf("%s-public-key.pem", uniqueID))
	if err := savePublicKey(&privateKey.PublicKey, publicKeyFilePath); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Saved RSA key pair ", privateKeyFilePath, " ", publicKeyFilePath)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), privateKeyFilePath)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), publicKeyFilePath)
}

// GenerateKeyCmd generates a symmetric key and persists it in the key directory
func (commandHandler *CipherCommandHandler) GenerateKeyCmd(cmd *cobra.Command, _ []string) {
	algorithm, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		commandHandler.logger.Error("invalid algorithm flag ", err)
		return
	}
	keySize, err := cmd.Flags().GetUint("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag ", err)
		return
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag ", err)
		return
	}

	request := &KeyGenerationRequest{
		Algorithm: algorithm,
		KeySize:   keySize,
		KeyDir:    commandHandler.orDefaultKeyDir(keyDir),
	}
	if request.Algorithm == cryptoDomain.AlgorithmRSA {
		commandHandler.logger.Error("use generate-rsa-keys for RSA key pairs")
		return
	}
	if err := request.Validate(); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	secretKey := make([]byte, request.KeySize/8)
	if _, err := rand.Read(secretKey); err != nil {
		commandHandler.logger.Error("failed to generate key ", err)
		return
	}

	keyFilePath := filepath.Join(request.KeyDir, fmt.Sprintf("%s-symmetric-key.bin", uuid.New()))
	if err := os.WriteFile(keyFilePath, secretKey, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info(request.Algorithm, " key saved to ", keyFilePath)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), keyFilePath)
}

// EncryptCmd encrypts a file with the requested cipher
func (commandHandler *CipherCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) {
	request, ok := commandHandler.cipherRequest(cmd)
	if !ok {
		return
	}

	cipher, err := commandHandler.crypto.Cipher(request.Algorithm)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	var key any
	if isRSA(request.Algorithm) {
		key, err = readPublicKey(request.KeyFile)
	} else {
		key, err = os.ReadFile(filepath.Clean(request.KeyFile))
	}
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	plainText, err := os.ReadFile(filepath.Clean(request.InputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	encryptedData, err := cipher.Encrypt(key, plainText)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(request.OutputFile, encryptedData, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Encrypted data with ", cipher.Algorithm(), " saved to ", request.OutputFile)
}

// DecryptCmd decrypts a file with the requested cipher
func (commandHandler *CipherCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) {
	request, ok := commandHandler.cipherRequest(cmd)
	if !ok {
		return
	}

	cipher, err := commandHandler.crypto.Cipher(request.Algorithm)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	var key any
	if isRSA(request.Algorithm) {
		key, err = readPrivateKey(request.KeyFile)
	} else {
		key, err = os.ReadFile(filepath.Clean(request.KeyFile))
	}
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	encryptedData, err := os.ReadFile(filepath.Clean(request.InputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	decryptedData, err := cipher.Decrypt(key, encryptedData)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(request.OutputFile, decryptedData, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Decrypted data with ", cipher.Algorithm(), " saved to ", request.OutputFile)
}

func (commandHandler *CipherCommandHandler) cipherRequest(cmd *cobra.Command) (*CipherRequest, bool) {
	request := &CipherRequest{}
	fields := map[string]*string{
		"algorithm":   &request.Algorithm,
		"input-file":  &request.InputFile,
		"output-file": &request.OutputFile,
		"key-file":    &request.KeyFile,
	}
	for flag, target := range fields {
		value, err := cmd.Flags().GetString(flag)
		if err != nil {
			commandHandler.logger.Error("invalid ", flag, " flag ", err)
			return nil, false
		}
		*target = value
	}

	if err := request.Validate(); err != nil {
		commandHandler.logger.Error(err)
		return nil, false
	}
	return request, true
}

func (commandHandler *CipherCommandHandler) orDefaultKeySize(keySize uint) uint {
	if keySize == 0 {
		return commandHandler.settings.RSAKeySize
	}
	return keySize
}

func (commandHandler *CipherCommandHandler) orDefaultKeyDir(keyDir string) string {
	if keyDir == "" {
		return commandHandler.settings.KeyDir
	}
	return keyDir
}

func isRSA(algorithm string) bool {
	transformation, err := cryptoDomain.ParseTransformation(algorithm)
	return err == nil && strings.EqualFold(transformation.Algorithm, cryptoDomain.AlgorithmRSA)
}

// InitCipherCommands registers key generation and encryption commands
func InitCipherCommands(rootCmd *cobra.Command) error {
	handler, err := NewCipherCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create cipher command handler: %w", err)
	}

	registerCipherCommands(rootCmd, handler)
	return nil
}

func registerCipherCommands(rootCmd *cobra.Command, handler *CipherCommandHandler) {
	var generateRSAKeysCmd = &cobra.Command{
		Use:   "generate-rsa-keys",
		Short: "Generate an RSA key pair",
		Run:   handler.GenerateRSAKeysCmd,
	}
	generateRSAKeysCmd.Flags().UintP("key-size", "", 0, "RSA key size in bits (defaults to the configured size)")
	generateRSAKeysCmd.Flags().StringP("key-dir", "", "", "Directory to store the RSA keys (defaults to the configured directory)")
	rootCmd.AddCommand(generateRSAKeysCmd)

	var generateKeyCmd = &cobra.Command{
		Use:   "generate-key",
		Short: "Generate a symmetric key",
		Run:   handler.GenerateKeyCmd,
	}
	generateKeyCmd.Flags().StringP("algorithm", "", cryptoDomain.AlgorithmAES, "AES, ChaCha20-Poly1305 or XChaCha20-Poly1305")
	generateKeyCmd.Flags().UintP("key-size", "", 256, "Key size in bits")
	generateKeyCmd.Flags().StringP("key-dir", "", "", "Directory to store the key (defaults to the configured directory)")
	rootCmd.AddCommand(generateKeyCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file",
		Run:   handler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("algorithm", "", cryptoDomain.AlgorithmRSA, "Cipher transformation, e.g. RSA or AES/GCM/NoPadding")
	encryptCmd.Flags().StringP("input-file", "", "", "Path to input file which needs to be encrypted")
	encryptCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	encryptCmd.Flags().StringP("key-file", "", "", "Path to RSA public key or symmetric key")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a file",
		Run:   handler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("algorithm", "", cryptoDomain.AlgorithmRSA, "Cipher transformation, e.g. RSA or AES/GCM/NoPadding")
	decryptCmd.Flags().StringP("input-file", "", "", "Path to encrypted file")
	decryptCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptCmd.Flags().StringP("key-file", "", "", "Path to RSA private key or symmetric key")
	rootCmd.AddCommand(decryptCmd)
}
