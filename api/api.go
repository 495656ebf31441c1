package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/FishDontExist/SOLinspector/config"
	"github.com/FishDontExist/SOLinspector/controllers"
)

func NewRouter(sn *controllers.SolNode) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/ping/", controllers.Ping).Methods("GET")
	r.HandleFunc("/slot/", sn.GetSlot).Methods("GET")
	r.HandleFunc("/getbalance/", sn.GetBalance).Methods("POST")
	r.HandleFunc("/inspect/", sn.InspectAccount).Methods("POST")
	r.HandleFunc("/tokenaccount/", sn.GetTokenAccount).Methods("POST")
	r.HandleFunc("/ata/", sn.GetATA).Methods("POST")
	return r
}

func SetApi() {
	r := NewRouter(controllers.New())
	http.Handle("/", r)
	log.Info().Str("addr", config.ListenAddr).Msg("listening")
	log.Fatal().Err(http.ListenAndServe(config.ListenAddr, r)).Msg("server stopped")
}
