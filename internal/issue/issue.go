// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	PythonNotFoundId Id = iota + 1
	PipUnavailableId
	BadAvoidConfigId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // pointers into the project docs
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	pythonNotFoundIssue = &Issue{
		id: PythonNotFoundId,
		mdMsg: `
# No python interpreter found!

licensegate audits the packages installed in the active Python
environment, so it needs a working interpreter on PATH.

## Things you can try:
- Activate the virtual environment of the project you want to audit:
~~~
$ source .venv/bin/activate
~~~

- Or install python3 system-wide and retry.

- Verify with:
~~~
$ python3 --version
~~~`,
		extLinks: []HttpLink{"https://www.python.org/downloads/"},
	}

	pipUnavailableIssue = &Issue{
		id: PipUnavailableId,
		mdMsg: `
# pip is not usable in this environment!

Direct dependencies are discovered via ` + "`pip freeze`" + `, which failed to run.

## Things you can try:
- Check that pip is installed for this interpreter:
~~~
$ python3 -m pip --version
~~~

- Bootstrap it if missing:
~~~
$ python3 -m ensurepip --upgrade
~~~`,
		extLinks: []HttpLink{"https://pip.pypa.io/en/stable/installation/"},
	}

	badAvoidConfigIssue = &Issue{
		id: BadAvoidConfigId,
		mdMsg: `
# Invalid disallow list configuration!

The ` + "`avoid`" + ` setting must be a list of license label strings.

## Example (pyproject.toml):
~~~toml
[tool.licensegate]
avoid = ["GPL", "AGPL"]
~~~

## Example (config.toml):
~~~toml
avoid = ["GPL", "AGPL"]
~~~`,
	}

	issues = map[Id]*Issue{
		pythonNotFoundIssue.Id(): pythonNotFoundIssue,
		pipUnavailableIssue.Id(): pipUnavailableIssue,
		badAvoidConfigIssue.Id(): badAvoidConfigIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
