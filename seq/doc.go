/*
Package seq provides ready-made sequence implementations for the parseq
algebra: plain strings split into runes (Chars), generic slices (Slice), a
line/column tracking wrapper (Positioned), and a view over gods containers
(List).

All of them are immutable values: splitting never modifies the receiver, it
returns a remainder sharing the underlying storage. Adding another sequence
kind is a matter of implementing SplitFirst on a new type; nothing in this
package or in the base package needs to know about it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seq
