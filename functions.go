package cloudpdf

// API function names. In signed mode the name of the operation being called
// is the token's function claim.
const (
	FuncGetAccount                 = "APIV2GetAccount"
	FuncGetAuth                    = "APIV2GetAuth"
	FuncCreateDocument             = "APIV2CreateDocument"
	FuncGetDocument                = "APIV2GetDocument"
	FuncUpdateDocument             = "APIV2UpdateDocument"
	FuncDeleteDocument             = "APIV2DeleteDocument"
	FuncCreateNewFileVersion       = "APIV2CreateNewFileVersion"
	FuncUploadDocumentFileComplete = "APIV2UploadDocumentFileComplete"
	FuncGetDocumentFile            = "APIV2GetDocumentFile"
	FuncCreateWebhook              = "APIV2CreateWebhook"
	FuncGetWebhook                 = "APIV2GetWebhook"
	FuncUpdateWebhook              = "APIV2UpdateWebhook"
	FuncDeleteWebhook              = "APIV2DeleteWebhook"
	FuncListWebhooks               = "APIV2ListWebhooks"

	// viewer tokens authorise the embedded viewer to open a document
	FuncViewerToken = "APIGetDocument"
)
