package assembly

import (
	"github.com/erraggy/oaskit/internal/pathutil"
	"github.com/erraggy/oaskit/model"
)

// applyDefaults fills in the fields every document needs and applies the
// configured info overrides.
func applyDefaults(doc *model.OpenAPI, cfg *Config) {
	switch {
	case cfg.OpenAPIVersion != "":
		doc.OpenAPI = cfg.OpenAPIVersion
	case doc.OpenAPI == "":
		doc.OpenAPI = DefaultOpenAPIVersion
	}
	if doc.Paths == nil {
		doc.Paths = &model.Paths{}
	}
	if doc.Info == nil {
		doc.Info = &model.Info{}
	}
	overrideInfo(doc.Info, &cfg.Info)
	if doc.Info.Title == "" {
		doc.Info.Title = defaultTitle(cfg.ArchiveName)
	}
	if doc.Info.Version == "" {
		doc.Info.Version = "1.0"
	}
}

func defaultTitle(archive string) string {
	if archive == "" {
		archive = "Generated"
	}
	return archive + " API"
}

func overrideInfo(info *model.Info, o *InfoConfig) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&info.Title, o.Title)
	set(&info.Version, o.Version)
	set(&info.Description, o.Description)
	set(&info.TermsOfService, o.TermsOfService)

	if o.ContactName != "" || o.ContactEmail != "" || o.ContactURL != "" {
		if info.Contact == nil {
			info.Contact = &model.Contact{}
		}
		set(&info.Contact.Name, o.ContactName)
		set(&info.Contact.Email, o.ContactEmail)
		set(&info.Contact.URL, o.ContactURL)
	}
	if o.LicenseName != "" || o.LicenseURL != "" {
		if info.License == nil {
			info.License = &model.License{}
		}
		set(&info.License.Name, o.LicenseName)
		set(&info.License.URL, o.LicenseURL)
	}
}

// injectServers replaces server lists from the configuration: the global
// list first, then per path, then per operation. Each replaces the list it
// targets outright.
func injectServers(doc *model.OpenAPI, cfg *Config) {
	if len(cfg.Servers) > 0 {
		doc.Servers = servers(cfg.Servers)
	}
	for path, urls := range cfg.PathServers {
		if item := doc.Paths.Get(path); item != nil {
			item.Servers = servers(urls)
		}
	}
	if len(cfg.OperationServers) == 0 {
		return
	}
	eachOperation(doc, func(_ string, op *model.Operation) {
		if urls, ok := cfg.OperationServers[op.OperationID]; ok && op.OperationID != "" {
			op.Servers = servers(urls)
		}
	})
}

func servers(urls []string) []*model.Server {
	out := make([]*model.Server, len(urls))
	for i, u := range urls {
		out[i] = &model.Server{URL: u}
	}
	return out
}

// eachOperation visits the operations of every path and webhook in
// document order. location is a JSON pointer to the operation.
func eachOperation(doc *model.OpenAPI, fn func(location string, op *model.Operation)) {
	visit := func(prefix string, items *model.Map[*model.PathItem]) {
		for name, item := range items.All() {
			item.Operations(func(method string, op *model.Operation) {
				fn(pathutil.Append(pathutil.Append(prefix, name), method), op)
			})
		}
	}
	if doc.Paths != nil {
		visit("/paths", doc.Paths.Items)
	}
	visit("/webhooks", doc.Webhooks)
}
