/*

example provides a toy use of convey's http stack, focusing on the basics of:

(1) constructing a Deliverer and a Router;
(2) binding routes to handlers;
(3) returning convert.Responder values from handlers and letting the
    Deliverer drive them into responses.

Run it, then try:

	curl -i localhost:8080/hello
	curl -i localhost:8080/things/42
	curl -i localhost:8080/things/0
	curl -i -X POST localhost:8080/things

*/
package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/xy-planning-network/convey/http/convert"
	"github.com/xy-planning-network/convey/http/route"
	"github.com/xy-planning-network/convey/http/serve"
	"github.com/xy-planning-network/convey/logger"

	"github.com/gorilla/mux"
)

func main() {
	// NOTE: absent .env is fine, the defaults below cover it.
	godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// NOTE: LOG_LEVEL and ENVIRONMENT are picked up inside New.
	l := logger.New()
	d := serve.NewDeliverer(serve.WithLogger(l))

	r := route.New(d,
		route.RequestID(),
		route.RateLimit(route.NewVisitors(5, 20)),
		route.LogRequest(l),
	)
	r.HandleRoutes([]route.Route{
		{Path: "/hello", Method: http.MethodGet, Handler: hello},
		{Path: "/things/{id}", Method: http.MethodGet, Handler: showThing},
		{Path: "/things", Method: http.MethodPost, Handler: createThing},
	})

	l.Info(fmt.Sprintf("listening on :%s", port), nil)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		l.Fatal(err.Error(), nil)
	}
}

// hello returns the simplest possible Responder: plain text.
func hello(_ *http.Request) convert.Responder {
	return convert.Text("Welcome!")
}

// showThing demonstrates the optional and fallible adapters together:
// a missing id renders 404, a bad one renders a tagged 400 problem.
func showThing(r *http.Request) convert.Responder {
	id := mux.Vars(r)["id"]

	switch id {
	case "0":
		err := convert.NewFault(errors.New("id 0 is reserved"), http.StatusBadRequest)
		return convert.Errored[convert.Text](err)
	case "42":
		return convert.Some(convert.Text("the answer"))
	default:
		return convert.None[convert.Text]()
	}
}

// createThing demonstrates decorating a response with a status code
// and headers after the fact.
func createThing(_ *http.Request) convert.Responder {
	return convert.WithStatus(convert.Text("made a thing"), http.StatusCreated).
		Header("location", "/things/1")
}
