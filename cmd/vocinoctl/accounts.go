package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// promptLine asks for one line of input when the flag was not provided.
func promptLine(label string) (string, error) {
	fmt.Printf("Please enter your %s:\n", label)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func orPrompt(value, label string) (string, error) {
	if value != "" {
		return value, nil
	}
	return promptLine(label)
}

func init() {
	var username, password, name string

	signupCmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if username, err = orPrompt(username, "username"); err != nil {
				return err
			}
			if name, err = orPrompt(name, "name"); err != nil {
				return err
			}
			if password, err = orPrompt(password, "password"); err != nil {
				return err
			}
			resp, err := checkResp(newClient().R().
				SetBody(map[string]string{"username": username, "password": password, "name": name}).
				Post("/api/users"))
			if err != nil {
				return err
			}
			fmt.Println(resp.String())
			return nil
		},
	}
	signupCmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	signupCmd.Flags().StringVarP(&password, "password", "p", "", "Password")
	signupCmd.Flags().StringVarP(&name, "name", "n", "", "Display name")
	rootCmd.AddCommand(signupCmd)

	var loginUser, loginPass string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print the account record",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if loginUser, err = orPrompt(loginUser, "username"); err != nil {
				return err
			}
			if loginPass, err = orPrompt(loginPass, "password"); err != nil {
				return err
			}
			resp, err := checkResp(newClient().R().
				SetBody(map[string]string{"username": loginUser, "password": loginPass}).
				Post("/api/auth/login"))
			if err != nil {
				return err
			}
			fmt.Println(resp.String())
			return nil
		},
	}
	loginCmd.Flags().StringVarP(&loginUser, "username", "u", "", "Username")
	loginCmd.Flags().StringVarP(&loginPass, "password", "p", "", "Password")
	rootCmd.AddCommand(loginCmd)

	var setName, setDesc, setPass string
	updateCmd := &cobra.Command{
		Use:   "update USERNAME",
		Short: "Update profile fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]string{}
			if setName != "" {
				payload["name"] = setName
			}
			if setDesc != "" {
				payload["description"] = setDesc
			}
			if setPass != "" {
				payload["password"] = setPass
			}
			if len(payload) == 0 {
				return fmt.Errorf("nothing to update; pass --name, --description or --password")
			}
			_, err := checkResp(newClient().R().
				SetBody(payload).
				Patch("/api/users/" + args[0]))
			return err
		},
	}
	updateCmd.Flags().StringVar(&setName, "name", "", "New display name")
	updateCmd.Flags().StringVar(&setDesc, "description", "", "New description")
	updateCmd.Flags().StringVar(&setPass, "password", "", "New password")
	rootCmd.AddCommand(updateCmd)
}
