package auth

import (
	"github.com/spf13/cobra"

	"github.com/fec-analyzer/cli/internal/app"
	"github.com/fec-analyzer/cli/internal/format"
	"github.com/fec-analyzer/cli/internal/models"
	"github.com/fec-analyzer/cli/internal/utils"
)

// AuthCmd represents the auth command
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long: `Authentication commands for the FEC Analyzer CLI.

This command group includes account registration, login, logout and
session status.`,
}

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to FEC Analyzer",
	Long:  "Authenticate with email and password; the session token is stored securely",
	RunE:  runLogin,
}

// registerCmd represents the register command
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	Long:  "Create a new account and log in with it immediately",
	RunE:  runRegister,
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout from FEC Analyzer",
	Long:  "Delete the stored session token and clear the session",
	RunE:  runLogout,
}

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status",
	Long:  "Display current authentication status and user information",
	RunE:  runStatus,
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Probe the authenticated API",
	Long:  "Call the protected diagnostic endpoint to verify the stored token",
	RunE:  runTest,
}

func runLogin(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	if err := utils.ValidateEmail(email); err != nil {
		return err
	}
	if err := utils.ValidatePassword(password); err != nil {
		return err
	}

	a := app.New(nil)

	format.PrintInfo("Logging in as %s...", email)
	err := a.Session.Login(cmd.Context(), models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}

	user := a.Session.Current().User
	format.PrintSuccess("✓ Successfully logged in as %s", user.Email)
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	username, _ := cmd.Flags().GetString("username")
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	if err := utils.ValidateUsername(username); err != nil {
		return err
	}
	if err := utils.ValidateEmail(email); err != nil {
		return err
	}
	if err := utils.ValidatePassword(password); err != nil {
		return err
	}

	a := app.New(nil)

	format.PrintInfo("Creating account %s...", username)
	err := a.Session.Register(cmd.Context(), models.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	format.PrintSuccess("✓ Account created, logged in as %s", email)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	a := app.New(nil)

	a.Session.Logout(cmd.Context())
	format.PrintSuccess("✓ Successfully logged out")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	a := app.New(nil)

	a.Session.Check(cmd.Context())
	cur := a.Session.Current()

	if !cur.IsAuthenticated() {
		format.PrintWarning("Status: Not logged in")
		return nil
	}

	format.PrintSuccess("Status: Logged in as %s", cur.User.Email)
	return format.Print(cur.User)
}

func runTest(cmd *cobra.Command, args []string) error {
	a := app.New(nil)

	if _, err := a.RequireAuth(cmd.Context()); err != nil {
		return err
	}

	out, err := a.Client.TestAuth(cmd.Context())
	if err != nil {
		return err
	}

	return format.Print(out)
}

func init() {
	loginCmd.Flags().StringP("email", "e", "", "Email address")
	loginCmd.Flags().StringP("password", "p", "", "Password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().StringP("username", "u", "", "Username")
	registerCmd.Flags().StringP("email", "e", "", "Email address")
	registerCmd.Flags().StringP("password", "p", "", "Password")
	registerCmd.MarkFlagRequired("username")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("password")

	AuthCmd.AddCommand(registerCmd)
	AuthCmd.AddCommand(loginCmd)
	AuthCmd.AddCommand(logoutCmd)
	AuthCmd.AddCommand(statusCmd)
	AuthCmd.AddCommand(testCmd)
}
