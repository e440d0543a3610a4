// Package professional holds the operator command that provisions
// professional accounts. There is deliberately no HTTP surface for
// this: professionals cannot self-register.
package professional

import (
	"context"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"residconnect/internal/application/professional/usecases"
	"residconnect/internal/infrastructure/config"
	httpRouter "residconnect/internal/interfaces/http"
	"residconnect/internal/shared/logger"
)

var (
	env         string
	email       string
	name        string
	profType    string
	phone       string
	agencyEmail string
	specialties string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "professional",
		Short: "Manage professional accounts",
	}

	cmd.AddCommand(newCreateCommand())

	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Provision a professional account",
		Long:  `Create a professional account in the record store. The password is prompted interactively and never passed on the command line.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVar(&email, "email", "", "Login email (required)")
	cmd.Flags().StringVar(&name, "name", "", "Display name (required)")
	cmd.Flags().StringVar(&profType, "type", "", "Professional type: plumber, electrician, concierge, agency (required)")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&agencyEmail, "agency-email", "", "Supervising agency email")
	cmd.Flags().StringVar(&specialties, "specialties", "", "Free-text specialties")

	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("type")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	password, err := promptPassword()
	if err != nil {
		return err
	}

	uc := httpRouter.NewProfessionalProvisioner(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := uc.Execute(ctx, usecases.CreateProfessionalCommand{
		Email:       email,
		Password:    password,
		Name:        name,
		Type:        profType,
		Phone:       phone,
		AgencyEmail: agencyEmail,
		Specialties: specialties,
	})
	if err != nil {
		return err
	}

	fmt.Printf("professional created: %s (%s, %s)\n", result.Email, result.Name, result.Type)
	return nil
}

func promptPassword() (string, error) {
	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", fmt.Errorf("password prompt requires an interactive terminal")
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password confirmation: %w", err)
	}

	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}

	return string(password), nil
}
