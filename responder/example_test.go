package responder_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"

	"github.com/Zodt/munisio/hateoas"
	"github.com/Zodt/munisio/linkgen"
	"github.com/Zodt/munisio/responder"
)

type project struct {
	hateoas.Resource
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func ExampleResponder_full() {
	errDuplicate := errors.New("project already exists")

	links, err := linkgen.NewTable(map[string]linkgen.Route{
		"GetProject": {Method: http.MethodGet, Path: "/projects/{id}"},
	})
	if err != nil {
		panic(err)
	}
	reg := hateoas.NewRegistry()
	hateoas.MustRegister(reg, hateoas.ProviderFunc[*project](func(hc *hateoas.Context, p *project) error {
		self, err := hc.Link("self", "GetProject", hateoas.Params{"id": strconv.Itoa(p.ID)})
		if err != nil {
			return err
		}
		p.AddLink(self)
		return nil
	}))
	coord, err := hateoas.NewCoordinator(reg, hateoas.WithLinkGenerator(links))
	if err != nil {
		panic(err)
	}

	r := responder.NewResponder(
		responder.WithEnricher(coord),
		responder.WithErrorClassifier(func(err error) (int, bool) {
			if errors.Is(err, errDuplicate) {
				return http.StatusConflict, true
			}
			return 0, false
		}),
	)

	store := make(map[string]int)
	handler := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Name string `json:"name"`
		}
		if !r.ReadRequestBody(w, req, &body) {
			return
		}
		if body.Name == "" {
			r.HandleBadRequestError(w, req, errors.New("name is required"))
			return
		}
		if _, exists := store[body.Name]; exists {
			r.HandleErrors(w, req, errDuplicate)
			return
		}
		store[body.Name] = len(store) + 1
		r.RespondWithJSON(w, req, http.StatusCreated, &project{ID: store[body.Name], Name: body.Name})
	})

	createRec := httptest.NewRecorder()
	handler.ServeHTTP(createRec, httptest.NewRequest(http.MethodPost, "/projects", strings.NewReader(`{"name":"munisio"}`)))
	fmt.Println(createRec.Code)
	fmt.Println(strings.TrimSpace(createRec.Body.String()))

	dupRec := httptest.NewRecorder()
	handler.ServeHTTP(dupRec, httptest.NewRequest(http.MethodPost, "/projects", strings.NewReader(`{"name":"munisio"}`)))

	var problem responder.ProblemDetails
	_ = json.Unmarshal(dupRec.Body.Bytes(), &problem)
	fmt.Println(problem.Status)
	fmt.Println(problem.Title)

	// Output:
	// 201
	// {"_links":[{"rel":"self","href":"/projects/1","method":"GET"}],"id":1,"name":"munisio"}
	// 409
	// Conflict
}

func ExampleWithStatusMetadata() {
	r := responder.NewResponder(
		responder.WithStatusMetadata(http.StatusUnauthorized, responder.StatusMetadata{
			Title:   "Missing token",
			LogMsg:  "authentication failed",
			TypeURI: "https://status.example.com/unauthorized",
		}),
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	r.HandleUnauthorizedError(rec, req, errors.New("token expired"))

	fmt.Println(rec.Code)
	fmt.Println(strings.Contains(rec.Body.String(), "\"title\":\"Missing token\""))

	// Output:
	// 401
	// true
}
