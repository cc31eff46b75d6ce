/*
	Copyright 2023 Google Inc.
	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at
		https://www.apache.org/licenses/LICENSE-2.0
	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

package page

import (
	"os"

	"github.com/google/safehtml"
	"github.com/google/safehtml/uncheckedconversions"
)

// EnvVar is the environment variable that, when set, redirects both jQuery
// and flot to a local directory.
const EnvVar = "FLOT"

// Default asset locations.
const (
	DefaultJQuery = "https://cdnjs.cloudflare.com/ajax/libs/jquery/3.2.1"
	DefaultFlot   = "https://cdnjs.cloudflare.com/ajax/libs/flot/0.8.3"
)

// Script files loaded from the asset locations.
const (
	jqueryScript = "jquery.min.js"
	flotScript   = "jquery.flot.min.js"
	timeScript   = "jquery.flot.time.min.js"
	symbolScript = "jquery.flot.symbol.min.js"
)

// Sources are the URL prefixes jQuery and the flot scripts are loaded from.
type Sources struct {
	JQuery string
	Flot   string
}

// DefaultSources returns the public CDN sources.
func DefaultSources() Sources {
	return Sources{
		JQuery: DefaultJQuery,
		Flot:   DefaultFlot,
	}
}

// LocalSources returns sources loading every script from the local
// directory dir.
func LocalSources(dir string) Sources {
	local := "file://" + dir
	return Sources{
		JQuery: local,
		Flot:   local,
	}
}

// SourcesFromEnv returns LocalSources of $FLOT if it is set, and
// DefaultSources otherwise.
func SourcesFromEnv() Sources {
	if dir, ok := os.LookupEnv(EnvVar); ok && dir != "" {
		return LocalSources(dir)
	}
	return DefaultSources()
}

func (s Sources) script(prefix, file string) safehtml.TrustedResourceURL {
	return uncheckedconversions.TrustedResourceURLFromStringKnownToSatisfyTypeContract(prefix + "/" + file)
}

// scripts returns the script URLs a page needs, given whether any of its
// plots use time axes or custom symbols.
func (s Sources) scripts(time, symbols bool) []safehtml.TrustedResourceURL {
	ret := []safehtml.TrustedResourceURL{
		s.script(s.JQuery, jqueryScript),
		s.script(s.Flot, flotScript),
	}
	if time {
		ret = append(ret, s.script(s.Flot, timeScript))
	}
	if symbols {
		ret = append(ret, s.script(s.Flot, symbolScript))
	}
	return ret
}
