package email

// PreviewData holds sample values per template, for local previews and tests.
var PreviewData = map[Template]map[string]string{
	TemplateContactInquiry: {
		"InquiryID":  "7c0e0d3a-1f7e-4a8e-9b7e-2f1d4f3c9a10",
		"Name":       "Dara Sok",
		"Email":      "dara@example.com",
		"Phone":      "+855 12 000 111",
		"Message":    "Is the BKK1 apartment still available next month?",
		"ReceivedAt": "Mon, 04 Mar 2024 09:30:00 UTC",
	},
}

// Preview renders a template with its preview data.
func Preview(name Template) (string, error) {
	return Render(name, PreviewData[name])
}
