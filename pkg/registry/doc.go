/*
Package registry maps textual node classes to factories.

Any package can contribute a node type by registering a class name and a constructor before
the first pipeline runs; the executor never needs to know the concrete type. Registration is
explicit: call Register (or MustRegister) from startup code, then optionally Seal the registry
so late registrations fail loudly.

Duplicate classes are rejected. The first registration wins and the second call returns
ErrDuplicateNode.
*/
package registry
