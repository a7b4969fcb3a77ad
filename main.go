package main

import (
	"net/http"
	"os"

	"github.com/companieshouse/checkout.api.ch.gov.uk/config"
	"github.com/companieshouse/checkout.api.ch.gov.uk/dao"
	"github.com/companieshouse/checkout.api.ch.gov.uk/handlers"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

func main() {
	log.Namespace = "checkout.api.ch.gov.uk"

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	router := mux.NewRouter()

	if err = handlers.Register(router, *cfg, dao.NewDAO(cfg)); err != nil {
		log.Error(err)
		os.Exit(1)
	}

	log.Info("Starting checkout.api.ch.gov.uk service", log.Data{"bind_addr": cfg.BindAddr})
	err = http.ListenAndServe(cfg.BindAddr, router)
	if err != nil {
		log.Error(err)
	}
	log.Trace("Exiting checkout.api.ch.gov.uk service")
}
