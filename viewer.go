package cloudpdf

import "time"

// GetViewerToken mints a token for the embedded document viewer, for example
// Params{"docId": "..."}. No request is made. expiresIn <= 0 means ViewerTokenExpiry.
//
// Viewer tokens are always signed, whatever the client's auth mode, so the
// cloud name and signing secret must be configured.
func (c *Client) GetViewerToken(params Params, expiresIn time.Duration) (string, error) {
	if expiresIn <= 0 {
		expiresIn = ViewerTokenExpiry
	}
	if params == nil {
		params = Params{}
	}
	return c.MintSignedToken(FuncViewerToken, params, expiresIn)
}
