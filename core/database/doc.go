// Package database handles Record Store database connections.
//
// It provides a wrapper around GORM to configure the store connection based
// on the application's configuration. The default driver is sqlite: the
// Record Store is a single exclusive-access local file, and concurrent
// writers are serialized by the storage engine's own locking, not by this
// package. The mysql driver is available for a centrally hosted master
// store.
//
// # Lock handling
//
// Opening a store that another process holds for writing surfaces as
// ErrStoreLocked. There is no retry; the operator is expected to close the
// other instance.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Store connection failed", err)
//	}
//	defer database.Close(db)
package database
