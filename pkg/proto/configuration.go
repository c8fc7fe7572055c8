package proto

import "regexp"

// ReqConfigurationDump matches the get-current-configuration request
// (spec.md §6: `QX`). The Configuration controller answers it by
// concatenating every other controller's query_current_configuration
// output in the fixed order spec.md §4.5 specifies.
var ReqConfigurationDump = regexp.MustCompile(`^QX$`)
