// Package services contains the business logic service layer: CRUD over
// agents, channels, and agent-channel mappings with write-time
// validation, plus phone-number routing resolution.
//
// Every write validates and commits inside a single transaction;
// partial unique indexes in PostgreSQL backstop races between
// concurrent transactions.
package services

import (
	"fmt"
	"time"

	"github.com/multichannel-ai/agentrouter/ent"
)

// dbTimeout bounds every database round-trip issued by the services.
const dbTimeout = 5 * time.Second

// rollback discards tx and decorates err with any rollback failure.
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
	}
	return err
}
