package email

// PreviewData contains sample template data for local preview/testing,
// keyed by template name.
var PreviewData = map[Template]map[string]string{
	TemplateSubmissionReceived: {
		"SubmissionID": "submissions:6f1c7a52-4a51-4d84-9e89-1f0c1c3c2a10",
		"Name":         "Ada Lovelace",
		"Email":        "ada@example.com",
		"Message":      "Hello! I would like to know more about your services.",
	},
}
