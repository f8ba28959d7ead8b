package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	followCmd := &cobra.Command{
		Use:   "follow USER_ID TARGET_ID",
		Short: "Follow another user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := checkResp(newClient().R().
				Post(fmt.Sprintf("/api/users/%s/following/%s", args[0], args[1])))
			return err
		},
	}
	rootCmd.AddCommand(followCmd)

	unfollowCmd := &cobra.Command{
		Use:   "unfollow USER_ID TARGET_ID",
		Short: "Unfollow a user and print the refreshed following list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := checkResp(newClient().R().
				Delete(fmt.Sprintf("/api/users/%s/following/%s", args[0], args[1])))
			if err != nil {
				return err
			}
			fmt.Println(resp.String())
			return nil
		},
	}
	rootCmd.AddCommand(unfollowCmd)

	removeFollowerCmd := &cobra.Command{
		Use:   "remove-follower USER_ID FOLLOWER_ID",
		Short: "Remove a follower and print the refreshed follower list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := checkResp(newClient().R().
				Delete(fmt.Sprintf("/api/users/%s/followers/%s", args[0], args[1])))
			if err != nil {
				return err
			}
			fmt.Println(resp.String())
			return nil
		},
	}
	rootCmd.AddCommand(removeFollowerCmd)

	followingCmd := &cobra.Command{
		Use:   "following USER_ID",
		Short: "List followed profiles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := checkResp(newClient().R().
				Get(fmt.Sprintf("/api/users/%s/following", args[0])))
			if err != nil {
				return err
			}
			fmt.Println(resp.String())
			return nil
		},
	}
	rootCmd.AddCommand(followingCmd)

	followersCmd := &cobra.Command{
		Use:   "followers USER_ID",
		Short: "List follower profiles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := checkResp(newClient().R().
				Get(fmt.Sprintf("/api/users/%s/followers", args[0])))
			if err != nil {
				return err
			}
			fmt.Println(resp.String())
			return nil
		},
	}
	rootCmd.AddCommand(followersCmd)

	profileCmd := &cobra.Command{
		Use:   "profile USER_ID USERNAME",
		Short: "Look up another user's profile by username",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := checkResp(newClient().R().
				Get(fmt.Sprintf("/api/users/%s/profile/%s", args[0], args[1])))
			if err != nil {
				return err
			}
			fmt.Println(resp.String())
			return nil
		},
	}
	rootCmd.AddCommand(profileCmd)
}
