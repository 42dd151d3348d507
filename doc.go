/*
Package lcfrs induces Linear Context-Free Rewriting Systems from treebanks
with discontinuous constituents.

LCFRS generalize context-free grammars: a non-terminal may span several
non-adjacent runs of the input. Treebanks for free word order languages
(NeGra, TIGER) annotate such constituents with crossing branches. From every
tree of a corpus we read off one rule per node; the rule's left-hand side
carries one argument per contiguous run of the node's span (its fan-out),
and variables tie the arguments of the left-hand side to those of the
daughters. Package structure is as follows:

■ tree: Package tree links flat node records to a tree and computes the
terminal positions every node dominates.

■ grammar: Package grammar implements predicates, rules, the variable
contraction which produces a rule's canonical text, and a grammar store.

■ negra: Package negra reads corpora in NeGra export format.

■ induce: Package induce drives induction over a corpus, tree by tree.

■ cmd/lcfrs: Command lcfrs induces grammars from the command line and offers
an interactive sandbox.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lcfrs
