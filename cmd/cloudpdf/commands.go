package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nickabs/cloudpdf"
	"github.com/spf13/cobra"
)

func newAccountCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Show the account the credentials belong to",
		Args:  cobra.NoArgs,
		RunE: runCall(opts, func(ctx context.Context, c *cloudpdf.Client, _ []string) (json.RawMessage, error) {
			return c.Account(ctx)
		}),
	}
}

func newAuthCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Check the credentials",
		Args:  cobra.NoArgs,
		RunE: runCall(opts, func(ctx context.Context, c *cloudpdf.Client, _ []string) (json.RawMessage, error) {
			return c.Auth(ctx)
		}),
	}
}

// withParams returns a callFunc that decodes *data before calling call
func withParams(data *string, call func(ctx context.Context, c *cloudpdf.Client, args []string, params cloudpdf.Params) (json.RawMessage, error)) callFunc {
	return func(ctx context.Context, c *cloudpdf.Client, args []string) (json.RawMessage, error) {
		params, err := parseParams(*data)
		if err != nil {
			return nil, err
		}
		return call(ctx, c, args, params)
	}
}

func newDocumentsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "documents",
		Aliases: []string{"document", "docs"},
		Short:   "Manage documents and their files",
	}

	var createData string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a document",
		Args:  cobra.NoArgs,
		RunE: runCall(opts, withParams(&createData, func(ctx context.Context, c *cloudpdf.Client, _ []string, params cloudpdf.Params) (json.RawMessage, error) {
			return c.CreateDocument(ctx, params)
		})),
	}
	create.Flags().StringVar(&createData, "data", "", "document fields as a JSON object")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Get a document",
		Args:  cobra.ExactArgs(1),
		RunE: runCall(opts, func(ctx context.Context, c *cloudpdf.Client, args []string) (json.RawMessage, error) {
			return c.GetDocument(ctx, args[0])
		}),
	}

	var updateData string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a document",
		Args:  cobra.ExactArgs(1),
		RunE: runCall(opts, withParams(&updateData, func(ctx context.Context, c *cloudpdf.Client, args []string, params cloudpdf.Params) (json.RawMessage, error) {
			return c.UpdateDocument(ctx, args[0], params)
		})),
	}
	update.Flags().StringVar(&updateData, "data", "", "document fields as a JSON object")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a document",
		Args:  cobra.ExactArgs(1),
		RunE: runCall(opts, func(ctx context.Context, c *cloudpdf.Client, args []string) (json.RawMessage, error) {
			return c.DeleteDocument(ctx, args[0])
		}),
	}

	var versionData string
	newVersion := &cobra.Command{
		Use:   "new-version <id>",
		Short: "Start the upload of a new file version",
		Args:  cobra.ExactArgs(1),
		RunE: runCall(opts, withParams(&versionData, func(ctx context.Context, c *cloudpdf.Client, args []string, params cloudpdf.Params) (json.RawMessage, error) {
			return c.CreateNewFileVersion(ctx, args[0], params)
		})),
	}
	newVersion.Flags().StringVar(&versionData, "data", "", "file fields as a JSON object")

	var completeData string
	complete := &cobra.Command{
		Use:   "complete-upload <id> <file-id>",
		Short: "Mark the upload of a file version as finished",
		Args:  cobra.ExactArgs(2),
		RunE: runCall(opts, withParams(&completeData, func(ctx context.Context, c *cloudpdf.Client, args []string, params cloudpdf.Params) (json.RawMessage, error) {
			return c.UploadDocumentFileComplete(ctx, args[0], args[1], params)
		})),
	}
	complete.Flags().StringVar(&completeData, "data", "", "extra fields as a JSON object")

	getFile := &cobra.Command{
		Use:   "get-file <id> <file-id>",
		Short: "Get a file version of a document",
		Args:  cobra.ExactArgs(2),
		RunE: runCall(opts, func(ctx context.Context, c *cloudpdf.Client, args []string) (json.RawMessage, error) {
			return c.GetDocumentFile(ctx, args[0], args[1])
		}),
	}

	cmd.AddCommand(create, get, update, del, newVersion, complete, getFile)
	return cmd
}

func newWebhooksCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "webhooks",
		Aliases: []string{"webhook"},
		Short:   "Manage webhooks",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List webhooks",
		Args:  cobra.NoArgs,
		RunE: runCall(opts, func(ctx context.Context, c *cloudpdf.Client, _ []string) (json.RawMessage, error) {
			return c.ListWebhooks(ctx)
		}),
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Get a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: runCall(opts, func(ctx context.Context, c *cloudpdf.Client, args []string) (json.RawMessage, error) {
			return c.GetWebhook(ctx, args[0])
		}),
	}

	var createData string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a webhook",
		Args:  cobra.NoArgs,
		RunE: runCall(opts, withParams(&createData, func(ctx context.Context, c *cloudpdf.Client, _ []string, params cloudpdf.Params) (json.RawMessage, error) {
			return c.CreateWebhook(ctx, params)
		})),
	}
	create.Flags().StringVar(&createData, "data", "", "webhook fields as a JSON object")

	var updateData string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: runCall(opts, withParams(&updateData, func(ctx context.Context, c *cloudpdf.Client, args []string, params cloudpdf.Params) (json.RawMessage, error) {
			return c.UpdateWebhook(ctx, args[0], params)
		})),
	}
	update.Flags().StringVar(&updateData, "data", "", "webhook fields as a JSON object")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: runCall(opts, func(ctx context.Context, c *cloudpdf.Client, args []string) (json.RawMessage, error) {
			return c.DeleteWebhook(ctx, args[0])
		}),
	}

	cmd.AddCommand(list, get, create, update, del)
	return cmd
}

func newViewerTokenCmd(opts *options) *cobra.Command {
	var (
		data      string
		expiresIn time.Duration
	)

	cmd := &cobra.Command{
		Use:   "viewer-token",
		Short: "Mint a token for the embedded document viewer",
		Long: `Mints a signed viewer token locally; no request is made.
Requires a cloud name and signing secret.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := parseParams(data)
			if err != nil {
				return err
			}
			c, err := opts.client(cmd)
			if err != nil {
				return err
			}
			token, err := c.GetViewerToken(params, expiresIn)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&data, "data", "", `viewer params as a JSON object, e.g. {"docId":"..."}`)
	cmd.Flags().DurationVar(&expiresIn, "expires", cloudpdf.ViewerTokenExpiry, "token lifetime")

	return cmd
}
