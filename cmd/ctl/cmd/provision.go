package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"characterdex/internal/domain/user"
	"characterdex/internal/infrastructure/storage/sqlite"

	"github.com/fatih/color"
	"github.com/sethvargo/go-password/password"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const generatedPasswordLength = 20

var (
	adminName     string
	adminPassword string
	generate      bool
)

var errNoSecret = errors.New("no admin password: use --password, ADMIN_PASSWORD, --generate or run interactively")

var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Создать учетную запись администратора, если ее еще нет",
	Long: `Пароль берется из --password, переменной ADMIN_PASSWORD, интерактивного
ввода без эха или генерируется (--generate) и печатается один раз.`,
	RunE: runProvision,
}

func runProvision(cmd *cobra.Command, _ []string) error {
	username := adminName
	if username == "" {
		username = cfg.Auth.AdminUsername
	}

	secret, generated, err := resolveSecret(cmd)
	if err != nil {
		return err
	}

	storage, err := sqlite.New(cmd.Context(), cfg.DB.Path, log)
	if err != nil {
		return err
	}
	defer storage.Close()

	service := user.NewService(sqlite.NewUserRepository(storage, log), user.NewCredentialsValidator(), log)
	created, err := service.EnsureAdmin(cmd.Context(), username, secret)
	if err != nil {
		return fmt.Errorf("provision admin: %w", err)
	}

	w := out(cmd)
	if !created {
		fmt.Fprintf(w, "Admin user already exists: %s\n", username)
		return nil
	}

	fmt.Fprintln(w, color.GreenString("Created admin user: %s", username))
	if generated {
		fmt.Fprintf(w, "Generated password (shown once): %s\n", color.New(color.Bold).Sprint(secret))
	}
	return nil
}

// resolveSecret выбирает источник пароля: флаг, окружение, генерация, терминал.
func resolveSecret(cmd *cobra.Command) (secret string, generated bool, err error) {
	switch {
	case adminPassword != "":
		return adminPassword, false, nil
	case cfg.Auth.AdminPassword != "":
		return cfg.Auth.AdminPassword, false, nil
	case generate:
		secret, err = password.Generate(generatedPasswordLength, 4, 0, false, true)
		if err != nil {
			return "", false, fmt.Errorf("generate password: %w", err)
		}
		return secret, true, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", false, errNoSecret
	}

	w := out(cmd)
	fmt.Fprint(w, "Admin password: ")
	first, err := term.ReadPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", false, fmt.Errorf("read password: %w", err)
	}

	fmt.Fprint(w, "Repeat password: ")
	second, err := term.ReadPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", false, fmt.Errorf("read password: %w", err)
	}

	if string(first) != string(second) {
		return "", false, errors.New("passwords do not match")
	}
	if strings.TrimSpace(string(first)) == "" {
		return "", false, errNoSecret
	}
	return string(first), false, nil
}

func init() {
	provisionCmd.Flags().StringVar(&adminName, "username", "", "имя администратора (по умолчанию ADMIN_USERNAME)")
	provisionCmd.Flags().StringVar(&adminPassword, "password", "", "пароль администратора")
	provisionCmd.Flags().BoolVar(&generate, "generate", false, "сгенерировать пароль и напечатать его")
}
