package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vocino/vocino/internal/audio"
)

func init() {
	var wavFile string

	postCmd := &cobra.Command{
		Use:   "post USER_ID",
		Short: "Publish a voice note from a WAV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, err := audio.Decode(wavFile)
			if err != nil {
				return err
			}
			resp, err := checkResp(newClient().R().
				SetBody(map[string]interface{}{"samples": samples}).
				Post(fmt.Sprintf("/api/users/%s/notes", args[0])))
			if err != nil {
				return err
			}
			fmt.Println(resp.String())
			return nil
		},
	}
	postCmd.Flags().StringVarP(&wavFile, "file", "f", "", "WAV file to publish (required)")
	_ = postCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(postCmd)

	var replyFile string
	replyCmd := &cobra.Command{
		Use:   "reply USER_ID NOTE_ID",
		Short: "Reply to a voice note with a WAV file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, err := audio.Decode(replyFile)
			if err != nil {
				return err
			}
			resp, err := checkResp(newClient().R().
				SetBody(map[string]interface{}{"samples": samples}).
				Post(fmt.Sprintf("/api/users/%s/notes/%s/replies", args[0], args[1])))
			if err != nil {
				return err
			}
			fmt.Println(resp.String())
			return nil
		},
	}
	replyCmd.Flags().StringVarP(&replyFile, "file", "f", "", "WAV file to publish (required)")
	_ = replyCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(replyCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete USER_ID NOTE_ID",
		Short: "Delete a voice note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := checkResp(newClient().R().
				Delete(fmt.Sprintf("/api/users/%s/notes/%s", args[0], args[1])))
			return err
		},
	}
	rootCmd.AddCommand(deleteCmd)

	var kind string
	reactCmd := &cobra.Command{
		Use:   "react NOTE_ID USER_ID",
		Short: "React to a voice note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := checkResp(newClient().R().
				SetBody(map[string]string{"kind": kind}).
				Put(fmt.Sprintf("/api/notes/%s/reactions/%s", args[0], args[1])))
			return err
		},
	}
	reactCmd.Flags().StringVarP(&kind, "kind", "k", "affirm", "Reaction kind: affirm or object")
	rootCmd.AddCommand(reactCmd)

	feedCmd := &cobra.Command{
		Use:   "feed USER_ID",
		Short: "Fetch the feed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := checkResp(newClient().R().
				Get(fmt.Sprintf("/api/users/%s/feed", args[0])))
			if err != nil {
				return err
			}
			fmt.Println(resp.String())
			return nil
		},
	}
	rootCmd.AddCommand(feedCmd)

	conversationCmd := &cobra.Command{
		Use:   "conversation NOTE_ID",
		Short: "Fetch a post's conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := checkResp(newClient().R().
				Get(fmt.Sprintf("/api/notes/%s/conversation", args[0])))
			if err != nil {
				return err
			}
			fmt.Println(resp.String())
			return nil
		},
	}
	rootCmd.AddCommand(conversationCmd)
}
