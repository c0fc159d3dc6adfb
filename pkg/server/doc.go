// Package server hosts a set of text fields over HTTP. Each field is mounted
// once at construction and guarded by its own mutex; every route maps onto a
// single field operation and answers with the resulting state.
//
//	store, _ := fieldconfig.LoadFile("fields.yaml")
//	srv, _ := server.New(store, server.WithLogger(logger))
//	http.ListenAndServe(":8080", srv.Handler())
package server
