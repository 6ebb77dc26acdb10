package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPassword securely reads a password with masking
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Println()
	return strings.TrimSpace(string(bytePassword)), nil
}

func readLine(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and verify the one-time code",
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(os.Stdin)
		ctx := cmd.Context()

		email, err := readLine(reader, "Email: ")
		if err != nil {
			return err
		}
		password, err := readPassword("Password: ")
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		if err := app.Session.Login(ctx, email, password); err != nil {
			return err
		}
		fmt.Printf("A one-time code was sent to %s.\n", app.Session.PendingEmail())

		for {
			code, err := readLine(reader, "One-time code (or 'resend'): ")
			if err != nil {
				return err
			}
			if code == "resend" {
				if err := app.Session.Login(ctx, email, password); err != nil {
					return err
				}
				fmt.Println("A new code was sent.")
				continue
			}
			if err := app.Session.VerifyOTP(ctx, email, code); err != nil {
				return err
			}
			break
		}

		if user := app.Session.User(); user != nil && user.Name != "" {
			fmt.Printf("Logged in as %s.\n", user.Name)
		} else {
			fmt.Println("Logged in.")
		}
		return nil
	},
}
