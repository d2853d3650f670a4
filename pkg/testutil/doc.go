// Package testutil provides test environments for shkit components.
//
// Key components:
//   - TestEnvironment: isolates XDG directories and SHKIT_ variables so
//     config, logging and lock tests never touch the user's files
//
// Usage guidelines:
//   - Create the environment first in a test; it registers its own cleanup
//   - Tests using it must not call t.Parallel, since it sets process env
//   - Define test data inline with WriteConfig rather than fixture files
package testutil
