// Package dashboard holds the application state of the order dashboard: the
// board snapshot, the guard flags that keep operations of the same kind from
// overlapping, the single active note edit, the last quiet failure and the
// alerts still waiting for acknowledgement.
//
// All state is owned by one Store and changed only through its named
// methods. Guards are tested and set under the store's mutex before a remote
// call starts; the remote call itself runs outside the lock. Snapshots are
// replaced wholesale, so whichever fetch completes last wins.
package dashboard
