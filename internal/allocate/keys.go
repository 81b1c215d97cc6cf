package allocate

import "github.com/harini/sciquiz/internal/question"

// Key layout in the shared store. The namespacing mirrors what every
// session expects to find, so it is part of the coordination contract:
//
//	completedSets_<sessionID>_<grade>_<subject>  -> [setNumber, ...]
//	activeSets_<grade>_<subject>                 -> {sessionID: claim, ...}
func completedKey(sessionID string, scope question.Scope) string {
	return "completedSets_" + sessionID + "_" + scope.Grade + "_" + scope.Subject
}

func activeKey(scope question.Scope) string {
	return "activeSets_" + scope.Grade + "_" + scope.Subject
}
