// This file is part of arc - https://github.com/arclang/arc
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package reader implements the lexer and recursive-descent parser that
// turn source text into value.Value trees: whitespace/comment skipping,
// single-character tokens, string and character literals, reader-macro
// prefixes ('  `  ,  ,@), the [...] bracket-fn desugar, and the
// right-to-left symbol-level infix rewriting (a.b, a!b, a:b, ~a).
//
// End of input inside a string or a list is reported as a distinct
// condition (ErrUnterminated) from a malformed token (*SyntaxError), so a REPL
// can tell "give me another line" from "that will never parse".
package reader
