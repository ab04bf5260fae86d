package assembly

import (
	"github.com/erraggy/oaskit"
	"github.com/erraggy/oaskit/internal/pathutil"
	"github.com/erraggy/oaskit/model"
	"github.com/erraggy/oaskit/oaserrors"
)

// checkOperationIDs reports operationIds used by more than one operation.
// With DuplicateOperationIDFail the first duplicate is returned as a
// *oaserrors.ValidationError; otherwise each is logged as a warning.
func checkOperationIDs(doc *model.OpenAPI, behavior DuplicateOperationIDBehavior, logger oaskit.Logger) error {
	first := make(map[string]string)
	var dup *oaserrors.ValidationError
	eachOperation(doc, func(location string, op *model.Operation) {
		id := op.OperationID
		if id == "" || dup != nil {
			return
		}
		prev, seen := first[id]
		if !seen {
			first[id] = location
			return
		}
		if behavior == DuplicateOperationIDFail {
			dup = &oaserrors.ValidationError{
				Path:    pathutil.Append(location, "operationId"),
				Field:   "operationId",
				Value:   id,
				Message: "duplicate operationId, first used at " + prev,
			}
			return
		}
		logger.Warn("duplicate operationId",
			"operationId", id,
			"location", location,
			"first", prev,
		)
	})
	if dup != nil {
		return dup
	}
	return nil
}
