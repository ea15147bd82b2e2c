package cli

// commandHelp contains help text for each command.
var commandHelp = map[string]string{
	"add": `Syntax: add <type> [parent-id]
Description: Adds a new component of the given type. Without a parent id
the component lands at the root level of the canvas; inside a flex
container it flows with its siblings instead of getting free offsets.
Types: div, text, button, img, header, content, footer, svg, checkbox,
slider, customWidget.
Example: add button element-1`,

	"del": `Syntax: del [id]
Description: Deletes the component and its whole subtree, including any
per-element CSS and JS attached to it. Defaults to the selection.
Example: del element-3`,

	"move": `Syntax: move <id> <target-id|root>
Description: Moves a component under a new parent as its last child, or
back to the root level. Moving into the component's own subtree is
rejected. Position styles adapt to the target's layout mode.
Example: move element-3 element-1`,

	"reorder": `Syntax: reorder <id> <container-id> <x> <y>
Description: Drops a flex item at cursor coordinates inside a flex
container; the insertion index is resolved against the sibling midpoints
on the container's flex axis.
Example: reorder element-3 element-1 40 0`,

	"select": `Syntax: select <id|none>
Description: Sets or clears the current selection.
Example: select element-2`,

	"set": `Syntax: set <style-key> <value> [id]
Description: Writes one style property (camelCase keys). An empty value
removes the property. Setting display to flex normalizes the positioning
of all direct children.
Example: set backgroundColor #222 element-1`,

	"corner": `Syntax: corner <tl|tr|br|bl> <value> [id]
Description: Sets one corner of the border radius, expanding the
shorthand as needed.
Example: corner br 12px`,

	"name": `Syntax: name <value> [id]
Description: Renames a component (display name, not its id).
Example: name "Hero Section" element-1`,

	"text": `Syntax: text <value> [id]
Description: Sets the inline text of a component.
Example: text "Click me" element-2`,

	"tag": `Syntax: tag <value> [id]
Description: Overrides the rendered element tag.
Example: tag section element-1`,

	"attr": `Syntax: attr <key> <value> [id]
Description: Sets an attribute. Class values are split into tokens.
Example: attr class "card wide" element-1`,

	"key": `Syntax: key <openKey|useMasterKey> <value> [id]
Description: Sets an interaction binding used by the Lua export.
Example: key openKey 0x78 element-2`,

	"master": `Syntax: master [vk-code]
Description: Sets the project-wide master key; omit the code to clear it.
Example: master 0x76`,

	"css": `Syntax: css <global|id> <text>
Description: Replaces the global stylesheet or the per-element CSS of one
component. An empty text removes a per-element entry.
Example: css element-1 "border: 2px dashed red;"`,

	"js": `Syntax: js <global|id> <text>
Description: Replaces the global script or the per-element JS of one
component. An empty text removes a per-element entry.
Example: js global "console.log('ready');"`,

	"collapse": `Syntax: collapse [id]
Description: Folds or unfolds a hierarchy entry. Defaults to the
selection.
Example: collapse element-1`,

	"show": `Syntax: show
Description: Prints the canvas projection of the tree as HTML.`,

	"tree": `Syntax: tree
Description: Prints the hierarchy outline with type icons; the selected
entry is marked and collapsed entries fold into a child count.`,

	"props": `Syntax: props [id]
Description: Prints the grouped properties form for a component. Flex
items hide X/Y and gain the flex item group; flex containers gain the
flex container group.`,

	"panels": `Syntax: panels [toggle <panel> | resize <panel> <dx> | split <height>]
Description: Shows or adjusts the workspace panel layout. Panels:
elements, hierarchy, properties.
Example: panels toggle hierarchy`,

	"undo": `Syntax: undo
Description: Reverts the last mutation.`,

	"redo": `Syntax: redo
Description: Reapplies the last undone mutation.`,

	"export": `Syntax: export <file.html>
Description: Exports the project as a standalone HTML document.
Example: export export/page.html`,

	"lua": `Syntax: lua <file.lua>
Description: Exports the project as a Macho API Lua script.
Example: lua export/menu.lua`,

	"import": `Syntax: import <file.html>
Description: Imports an HTML document as a new project. Stylesheets are
flattened onto the elements by specificity and local images are inlined.
Example: import page.html`,

	"save": `Syntax: save <file.json>
Description: Saves the project state to a JSON file.
Example: save export/project.json`,

	"load": `Syntax: load <file.json>
Description: Loads a project state from a JSON file.
Example: load export/project.json`,

	"project": `Syntax: project <save|load|list|del|protect> [name] [password]
Description: Manages named projects in the local database. 'protect'
sets a password on a project; protected projects require it on load.
Example: project save mymenu`,

	"help": `Syntax: help [command]
Description: Shows the command list or help for one command.`,

	"quit": `Syntax: quit
Description: Exits the program.`,

	"exit": `Syntax: exit
Description: Exits the program.`,
}
