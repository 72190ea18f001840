package cli

import (
	"bufio"
	"errors"
	"fmt"
	"net/mail"
	"os"
	"strings"

	"github.com/fittrackhq/fittrack/internal/db"
	"github.com/fittrackhq/fittrack/internal/models"
	"github.com/fittrackhq/fittrack/internal/security"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunResetPasswordCommand is the operator escape hatch for locked-out
// accounts. It prompts for a new password on the terminal; an empty
// prompt generates a temporary one and prints it.
func RunResetPasswordCommand(dbPath string, email string) error {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	if normalizedEmail == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	var user models.User
	if err := database.Where("lower(trim(email)) = ?", normalizedEmail).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %s not found", normalizedEmail)
		}
		return fmt.Errorf("load user: %w", err)
	}

	newPassword, generated, err := promptOrGeneratePassword()
	if err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = string(passwordHash)
	if err := database.Save(&user).Error; err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Println("Password reset successful")
	if generated {
		fmt.Printf("Temporary password: %s\n", newPassword)
	}
	return nil
}

func promptOrGeneratePassword() (string, bool, error) {
	fmt.Print("New password (leave empty to generate): ")

	var entered string
	if line, err := readPasswordNoEcho(os.Stdin); err == nil {
		entered = strings.TrimSpace(string(line))
		fmt.Println()
	} else {
		// No terminal control available, fall back to plain stdin.
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		entered = strings.TrimSpace(line)
	}

	if entered == "" {
		generatedPassword, err := generateTemporaryPassword(12)
		if err != nil {
			return "", false, fmt.Errorf("generate temporary password: %w", err)
		}
		return generatedPassword, true, nil
	}
	if len(entered) < 8 {
		return "", false, errors.New("password must be at least 8 characters")
	}
	return entered, false, nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	return security.RandomString(length, alphabet)
}
