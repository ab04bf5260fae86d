package assembly

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oaskit"
	"github.com/erraggy/oaskit/filter"
	"github.com/erraggy/oaskit/internal/testutil"
	"github.com/erraggy/oaskit/loader"
	"github.com/erraggy/oaskit/model"
	"github.com/erraggy/oaskit/oaserrors"
	"github.com/erraggy/oaskit/registry"
)

func pathsDoc(path string, item *model.PathItem) *model.OpenAPI {
	doc := &model.OpenAPI{Paths: &model.Paths{}}
	doc.Paths.Set(path, item)
	return doc
}

func TestAssemble_Precedence(t *testing.T) {
	reader := pathsDoc("/x", &model.PathItem{Get: testutil.NewOperation("a", "200", "from reader")})
	reader.Info = &model.Info{Title: "Reader", Description: "reader description", Version: "0.1"}
	reader.Paths.Set("/y", &model.PathItem{Get: testutil.NewOperation("y", "200", "ok")})

	static := pathsDoc("/x", &model.PathItem{Post: testutil.NewOperation("b", "201", "from static")})
	static.Info = &model.Info{Title: "Static", Description: "static description"}

	annotation := &model.OpenAPI{Info: &model.Info{Title: "Annotation"}}

	doc, err := Run(DefaultConfig(), Inputs{Reader: reader, Static: static, Annotation: annotation})
	require.NoError(t, err)

	x := doc.Paths.Get("/x")
	require.NotNil(t, x)
	require.NotNil(t, x.Get)
	require.NotNil(t, x.Post)
	assert.Equal(t, "a", x.Get.OperationID)
	assert.Equal(t, "b", x.Post.OperationID)
	assert.NotNil(t, doc.Paths.Get("/y"))
	assert.Equal(t, []string{"/x", "/y"}, doc.Paths.Items.Keys())

	assert.Equal(t, "Annotation", doc.Info.Title)
	assert.Equal(t, "static description", doc.Info.Description)
	assert.Equal(t, "0.1", doc.Info.Version)

	assert.Nil(t, reader.Paths.Get("/x").Post, "inputs are not modified")
	assert.Equal(t, "Reader", reader.Info.Title)
}

func TestAssemble_Defaults(t *testing.T) {
	t.Run("empty inputs", func(t *testing.T) {
		doc, err := Run(DefaultConfig(), Inputs{})
		require.NoError(t, err)
		assert.Equal(t, DefaultOpenAPIVersion, doc.OpenAPI)
		require.NotNil(t, doc.Paths)
		assert.Equal(t, "Generated API", doc.Info.Title)
		assert.Equal(t, "1.0", doc.Info.Version)
	})

	t.Run("archive name", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ArchiveName = "shop"
		doc, err := Run(cfg, Inputs{})
		require.NoError(t, err)
		assert.Equal(t, "shop API", doc.Info.Title)
	})

	t.Run("input values kept", func(t *testing.T) {
		in := testutil.NewSimpleDocument()
		in.OpenAPI = "3.0.3"
		doc, err := Run(DefaultConfig(), Inputs{Reader: in})
		require.NoError(t, err)
		assert.Equal(t, "3.0.3", doc.OpenAPI)
		assert.Equal(t, "Test API", doc.Info.Title)
		assert.Equal(t, "1.0.0", doc.Info.Version)
	})

	t.Run("configured version wins", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.OpenAPIVersion = "3.0.3"
		doc, err := Run(cfg, Inputs{Reader: testutil.NewSimpleDocument()})
		require.NoError(t, err)
		assert.Equal(t, "3.0.3", doc.OpenAPI)
	})

	t.Run("info overrides", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Info = InfoConfig{
			Version:      "2.0",
			Description:  "Configured",
			ContactEmail: "api@example.com",
			LicenseName:  "MIT",
		}
		doc, err := Run(cfg, Inputs{Reader: testutil.NewSimpleDocument()})
		require.NoError(t, err)
		assert.Equal(t, "Test API", doc.Info.Title)
		assert.Equal(t, "2.0", doc.Info.Version)
		assert.Equal(t, "Configured", doc.Info.Description)
		assert.Equal(t, "api@example.com", doc.Info.Contact.Email)
		assert.Equal(t, "MIT", doc.Info.License.Name)
	})
}

func TestAssemble_Servers(t *testing.T) {
	in := testutil.NewDetailedDocument()
	in.Servers = []*model.Server{{URL: "https://old.example.com"}}
	in.Paths.Get("/pets").Servers = []*model.Server{{URL: "https://old-path.example.com"}}

	cfg := DefaultConfig()
	cfg.Servers = []string{"https://api.example.com", "https://backup.example.com"}
	cfg.PathServers = map[string][]string{
		"/pets":    {"https://pets.example.com"},
		"/missing": {"https://nowhere.example.com"},
	}
	cfg.OperationServers = map[string][]string{"createPet": {"https://write.example.com"}}

	doc, err := Run(cfg, Inputs{Reader: in})
	require.NoError(t, err)

	urls := func(list []*model.Server) []string {
		out := make([]string, len(list))
		for i, s := range list {
			out[i] = s.URL
		}
		return out
	}
	pets := doc.Paths.Get("/pets")
	assert.Equal(t, []string{"https://api.example.com", "https://backup.example.com"}, urls(doc.Servers))
	assert.Equal(t, []string{"https://pets.example.com"}, urls(pets.Servers))
	assert.Equal(t, []string{"https://write.example.com"}, urls(pets.Post.Servers))
	assert.Empty(t, pets.Get.Servers)
	assert.Nil(t, doc.Paths.Get("/missing"))
}

func TestAssemble_Filters(t *testing.T) {
	in := testutil.NewDetailedDocument()
	in.Components.Schemas.Set("Orphan", model.TypedSchema("string"))

	var calls []string
	var sawOrphan bool
	first := filter.Funcs{
		Operation: func(op *model.Operation) *model.Operation {
			calls = append(calls, "first:"+op.OperationID)
			op.Summary = "filtered"
			return op
		},
		OpenAPI: func(doc *model.OpenAPI) {
			sawOrphan = doc.Components.Schemas.Has("Orphan")
		},
	}
	second := filter.Funcs{
		Operation: func(op *model.Operation) *model.Operation {
			calls = append(calls, "second:"+op.Summary)
			if op.OperationID == "createPet" {
				return nil
			}
			return op
		},
	}

	cfg := DefaultConfig()
	cfg.RemoveUnusedComponents = true
	c, err := New(cfg, WithFilters(first))
	require.NoError(t, err)
	require.NoError(t, c.SetReaderModel(in))
	require.NoError(t, c.AddFilter(second))

	doc, err := c.Assemble()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"first:listPets", "first:createPet",
		"second:filtered", "second:filtered",
	}, calls)
	assert.True(t, sawOrphan, "user filters run before the unused-component filter")
	assert.Nil(t, doc.Paths.Get("/pets").Post)
	assert.False(t, doc.Components.Schemas.Has("Orphan"))
	assert.True(t, doc.Components.Schemas.Has("Pet"))
	assert.False(t, doc.Components.SecuritySchemes.Has("apiKey"),
		"only the removed operation used the scheme")
}

func TestAssemble_UnusedFilterNotDuplicated(t *testing.T) {
	in := testutil.NewDetailedDocument()
	in.Components.Schemas.Set("Orphan", model.TypedSchema("string"))
	in.Components.Parameters = model.MapOf(model.P("Unused", &model.Parameter{Name: "u", In: "query"}))

	cfg := DefaultConfig()
	cfg.RemoveUnusedComponents = true
	own := filter.NewUnusedComponents(filter.WithCategories(model.CategoryParameters))

	doc, err := Run(cfg, Inputs{Reader: in}, own)
	require.NoError(t, err)
	assert.True(t, doc.Components.Schemas.Has("Orphan"), "the configured filter only prunes parameters")
	assert.Nil(t, doc.Components.Parameters)
	assert.Equal(t, []filter.ComponentKey{{Category: model.CategoryParameters, Name: "Unused"}}, own.Removed())
}

func TestAssemble_UnusedDisabled(t *testing.T) {
	in := testutil.NewDetailedDocument()
	in.Components.Schemas.Set("Orphan", model.TypedSchema("string"))

	doc, err := Run(DefaultConfig(), Inputs{Reader: in})
	require.NoError(t, err)
	assert.True(t, doc.Components.Schemas.Has("Orphan"))
}

func duplicateDoc() *model.OpenAPI {
	doc := pathsDoc("/a", &model.PathItem{Get: testutil.NewOperation("dup", "200", "ok")})
	doc.Paths.Set("/b/{id}", &model.PathItem{Put: testutil.NewOperation("dup", "200", "ok")})
	return doc
}

func TestAssemble_DuplicateOperationIDs(t *testing.T) {
	t.Run("warn", func(t *testing.T) {
		var buf bytes.Buffer
		logger := oaskit.NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, nil)))

		doc, err := RunWithOptions(DefaultConfig(), Inputs{Reader: duplicateDoc()}, WithLogger(logger))
		require.NoError(t, err)
		assert.NotNil(t, doc)
		assert.Contains(t, buf.String(), "duplicate operationId")
		assert.Contains(t, buf.String(), "/paths/~1b~1{id}/put")
	})

	t.Run("fail", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DuplicateOperationIDBehavior = DuplicateOperationIDFail

		_, err := Run(cfg, Inputs{Reader: duplicateDoc()})
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrValidation))
		var verr *oaserrors.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "/paths/~1b~1{id}/put/operationId", verr.Path)
		assert.Equal(t, "dup", verr.Value)
		assert.Contains(t, verr.Message, "/paths/~1a/get")
	})

	t.Run("webhooks", func(t *testing.T) {
		doc := duplicateDoc()
		doc.Paths.Get("/b/{id}").Put.OperationID = "unique"
		doc.Webhooks = model.MapOf(model.P("event", &model.PathItem{Post: testutil.NewOperation("dup", "200", "ok")}))
		cfg := DefaultConfig()
		cfg.DuplicateOperationIDBehavior = DuplicateOperationIDFail

		_, err := Run(cfg, Inputs{Reader: doc})
		var verr *oaserrors.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "/webhooks/event/post/operationId", verr.Path)
	})
}

func TestContext_State(t *testing.T) {
	c, err := New(DefaultConfig())
	require.NoError(t, err)

	_, err = c.Document()
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrState))

	doc, err := c.Assemble()
	require.NoError(t, err)
	got, err := c.Document()
	require.NoError(t, err)
	assert.Same(t, doc, got)

	for name, fn := range map[string]func() error{
		"Assemble":           func() error { _, err := c.Assemble(); return err },
		"SetReaderModel":     func() error { return c.SetReaderModel(nil) },
		"SetStaticModel":     func() error { return c.SetStaticModel(nil) },
		"SetAnnotationModel": func() error { return c.SetAnnotationModel(nil) },
		"AddFilter":          func() error { return c.AddFilter(filter.Funcs{}) },
	} {
		err := fn()
		var serr *oaserrors.StateError
		require.True(t, errors.As(err, &serr), name)
		assert.Equal(t, name, serr.Operation)
	}
}

func TestNew_Config(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))

	tests := []struct {
		name   string
		option string
		mutate func(*Config)
	}{
		{"version", "openapiVersion", func(c *Config) { c.OpenAPIVersion = "2.0" }},
		{"duplicate behavior", "duplicateOperationIdBehavior", func(c *Config) { c.DuplicateOperationIDBehavior = "ignore" }},
		{"static size", "staticFileMaxSize", func(c *Config) { c.StaticFileMaxSize = -1 }},
		{"contact email", "info.contactEmail", func(c *Config) { c.Info.ContactEmail = "api-team" }},
		{"license url", "info.licenseUrl", func(c *Config) { c.Info.LicenseURL = "LICENSE" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			_, err := New(cfg)
			var cerr *oaserrors.ConfigError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, tt.option, cerr.Option)
		})
	}
}

func TestContext_ID(t *testing.T) {
	a, err := New(DefaultConfig())
	require.NoError(t, err)
	b, err := New(DefaultConfig())
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

type rejectAll struct{ calls int }

func (r *rejectAll) Validate(*model.OpenAPI) error {
	r.calls++
	return &oaserrors.ValidationError{Message: "rejected"}
}

func TestAssemble_Validator(t *testing.T) {
	t.Run("custom", func(t *testing.T) {
		v := &rejectAll{}
		c, err := New(DefaultConfig(), WithValidator(v))
		require.NoError(t, err)
		_, err = c.Assemble()
		assert.True(t, errors.Is(err, oaserrors.ErrValidation))
		assert.Equal(t, 1, v.calls)

		_, err = c.Document()
		assert.True(t, errors.Is(err, oaserrors.ErrState), "a failed assembly is not final")
	})

	t.Run("structural", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ValidateStructure = true
		_, err := Run(cfg, Inputs{Reader: testutil.NewDetailedDocument()})
		assert.NoError(t, err)

		bad := pathsDoc("/a", &model.PathItem{Get: &model.Operation{OperationID: "noResponses"}})
		cfg.OpenAPIVersion = "3.0.3"
		_, err = Run(cfg, Inputs{Reader: bad})
		var verr *oaserrors.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "/paths/~1a/get", verr.Path)
	})
}


func registryID(name string) registry.TypeID {
	return registry.TypeID{Package: "app", Name: name}
}

func TestContext_Registry(t *testing.T) {
	c, err := New(DefaultConfig())
	require.NoError(t, err)
	assert.Same(t, c.Registry(), c.Registry())

	user := model.TypedSchema("object")
	id := registryID("User")
	ref := c.Registry().Register(id, user)
	assert.Equal(t, "#/components/schemas/User", ref.Ref())

	annotation := pathsDoc("/users", &model.PathItem{Get: testutil.NewOperation("listUsers", "200", "ok")})
	require.NoError(t, c.SetAnnotationModel(annotation))

	doc, err := c.Assemble()
	require.NoError(t, err)
	require.NotNil(t, doc.Components)
	assert.True(t, doc.Components.Schemas.Has("User"))
	assert.Nil(t, annotation.Components, "the annotation model is not modified")

	other, err := New(DefaultConfig())
	require.NoError(t, err)
	assert.Zero(t, other.Registry().Len(), "registries are per context")
}

func TestContext_RegistryReferencesDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SchemaReferencesEnabled = false
	c, err := New(cfg)
	require.NoError(t, err)

	user := model.TypedSchema("object")
	got := c.Registry().Register(registryID("User"), user)
	assert.Same(t, user, got)
	assert.Zero(t, c.Registry().Len())
}

func TestRun_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	titles := make([]string, 20)
	for i := range titles {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cfg := DefaultConfig()
			cfg.ArchiveName = fmt.Sprintf("svc%d", i)
			cfg.RemoveUnusedComponents = true
			doc, err := Run(cfg, Inputs{})
			if err == nil {
				titles[i] = doc.Info.Title
			}
		}()
	}
	wg.Wait()
	for i, title := range titles {
		assert.Equal(t, fmt.Sprintf("svc%d API", i), title)
	}
}

func TestContext_LoadStatic(t *testing.T) {
	primary := testutil.WriteTempFile(t, "openapi.yaml", `openapi: 3.1.0
info:
  title: Static
  version: "2.0"
paths:
  /x:
    get:
      operationId: a
      responses:
        "200":
          description: ok
`)
	standard := testutil.WriteTempFile(t, "openapi.json", `{
  "openapi": "3.1.0",
  "info": {"title": "Standard", "version": "1.0", "description": "from json"},
  "paths": {"/x": {"post": {"operationId": "b", "responses": {"200": {"description": "ok"}}}}}
}`)

	c, err := New(DefaultConfig())
	require.NoError(t, err)
	src := loader.FileSource(primary)
	require.NoError(t, c.LoadStatic(t.Context(), &src, loader.FileSource(standard)))
	require.NoError(t, c.SetReaderModel(pathsDoc("/z", &model.PathItem{Get: testutil.NewOperation("z", "200", "ok")})))

	doc, err := c.Assemble()
	require.NoError(t, err)
	assert.Equal(t, "Static", doc.Info.Title)
	assert.Equal(t, "from json", doc.Info.Description)
	assert.NotNil(t, doc.Paths.Get("/x").Get)
	assert.NotNil(t, doc.Paths.Get("/x").Post)
	assert.NotNil(t, doc.Paths.Get("/z"))
}

func TestContext_LoadStaticSizeCap(t *testing.T) {
	path := testutil.WriteTempFile(t, "big.yaml", "openapi: 3.1.0\ninfo: {title: T, version: v}\nx-pad: "+
		string(bytes.Repeat([]byte("a"), 256))+"\n")

	cfg := DefaultConfig()
	cfg.StaticFileMaxSize = 128
	c, err := New(cfg)
	require.NoError(t, err)

	err = c.LoadStatic(t.Context(), nil, loader.FileSource(path))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrParse))
	assert.True(t, errors.Is(err, oaserrors.ErrResourceLimit))

	_, err = c.Document()
	assert.True(t, errors.Is(err, oaserrors.ErrState), "a failed read does not finalize the context")
}
