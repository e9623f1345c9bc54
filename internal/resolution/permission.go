package resolution

import "github.com/matthewbaird/catalogview/internal/types"

// CheckPermission reports whether op is allowed on resource. Missing
// resources and operations are denied.
func CheckPermission(op types.Operation, resource types.ResourceEntity, perms types.Permissions) bool {
	return perms[resource][op]
}
