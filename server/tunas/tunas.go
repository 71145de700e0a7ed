// Package tunas has services for interacting with the voxctl server backend
// decoupled from the API that accesses it.
package tunas

import (
	"github.com/corvidae/voxctl/internal/command"
	"github.com/corvidae/voxctl/server/dao"
)

// Service is a service for interacting with and modifying the voxctl server
// backend. It performs the actions requested and makes calls to server
// persistence to preserve the backend state.
//
// The zero-value of Service is not ready to be used; assign a valid DAO store
// to DB and a command Registry to Commands before attempting to use it.
type Service struct {

	// DB is the persistence store of the service.
	DB dao.Store

	// Commands is the grammar registry used to dispatch recognized
	// transcripts.
	Commands *command.Registry
}
