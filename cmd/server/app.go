package main

import "github.com/gorilla/mux"

// App is the main application container.
type App struct {
	Router *mux.Router
}
