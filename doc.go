// Package cloudpdf is a client for the CloudPDF v2 REST API.
//
// Every call is authenticated in one of two ways:
//
//   - API key: the key is sent as-is in the X-Authorization header.
//   - Signed: a JWT signed with HS256 using the account's signing secret is
//     minted for each call. Its payload names the API function and the
//     parameters of the call and expires after 15 seconds; the kid header
//     is the cloud name.
//
// Signed mode is the default when both a cloud name and a signing secret are
// configured, and can be toggled with Client.SetSigned.
//
//	client, err := cloudpdf.New(cloudpdf.Config{
//	    APIKey:        os.Getenv("CLOUDPDF_API_KEY"),
//	    CloudName:     "my-cloud",
//	    SigningSecret: os.Getenv("CLOUDPDF_SIGNING_SECRET"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc, err := client.GetDocument(ctx, "8f14e45f")
//
// Responses are returned as raw JSON; decoding them is up to the caller.
//
// # Error Handling
//
// Invalid configuration is reported as a *ConfigError before anything is
// sent; match it with errors.Is(err, cloudpdf.ErrConfiguration).
//
// Failed requests return a *TransportError carrying the HTTP status (0 when
// no response was received) and the unparsed response body:
//
//	var trErr *cloudpdf.TransportError
//	if errors.As(err, &trErr) && trErr.StatusCode == http.StatusNotFound {
//	    // handle missing document
//	}
//
// Nothing is retried.
package cloudpdf
