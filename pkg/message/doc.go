// Package message renders validation failure messages.
//
// A message is one English sentence naming the subject and the requirement,
// optionally followed by a context block of aligned "key: value" lines:
//
//	"actual" must be equal to "expected".
//	actual  : 10
//	expected: 5
//
// Rendering is a pure function of its inputs. The package also provides
// unified diffs for multi-line values (via github.com/pmezard/go-difflib) and
// unit pluralization for sizes and lengths (via golang.org/x/text/feature/plural).
package message
