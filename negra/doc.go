/*
Package negra reads treebank corpora in NeGra export format.

A corpus file contains a sequence of sentences, each enclosed by a pair of
lines "#BOS n" and "#EOS n". Every line in between describes one node of the
sentence's tree: first the terminals in sentence order, then the internal
nodes, whose ids carry the marker '#'. Fields are separated by tabs or blanks;
"%%" starts a comment. Export format 4 carries a lemma column, format 3 does not:

	#FORMAT 4
	#BOS 1
	Die      die     ART    Nom.Sg.Fem   NK   500
	Katze    Katze   NN     Nom.Sg.Fem   NK   500
	schläft  schlafen VVFIN 3.Sg.Pres.Ind HD  501
	#500     --      NP     --           SB   501
	#501     --      S      --           --   0
	#EOS 1

Everything outside of sentences, e.g. the #BOT/#EOT tables of the header, is
ignored. Fields are split by a lexmachine DFA, compiled once.

	r := negra.NewReader(file)
	for {
		s, err := r.Next()
		if err == io.EOF {
			break
		}
		…
	}

A sentence with malformed records is returned with its Err field set; reading
continues with the next sentence.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package negra

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lcfrs.negra'.
func tracer() tracing.Trace {
	return tracing.Select("lcfrs.negra")
}
