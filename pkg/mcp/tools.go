package mcp

import "github.com/mark3labs/mcp-go/mcp"

func buildIndexTool() mcp.Tool {
	return mcp.NewTool("build_resource_index",
		mcp.WithDescription("Scan the library tree and (re)build the resource index. Returns record counts per kind."),
	)
}

func queryComponentTool() mcp.Tool {
	return mcp.NewTool("query_component",
		mcp.WithDescription("Look up a component by name with fuzzy fallback. Returns props, events, documentation, and usage examples."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Component name, e.g. yb-button"),
		),
		mcp.WithString("category",
			mcp.Description("Optional category hint narrowing the search, e.g. basic"),
		),
	)
}

func queryUtilityTool() mcp.Tool {
	return mcp.NewTool("query_utility",
		mcp.WithDescription("Look up a utility module or a function inside one."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Module or function name, e.g. crypto or encrypted"),
		),
	)
}

func queryPluginTool() mcp.Tool {
	return mcp.NewTool("query_plugin",
		mcp.WithDescription("Look up a plugin by name."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Plugin name, e.g. loading"),
		),
	)
}

func bestPracticesTool() mcp.Tool {
	return mcp.NewTool("get_best_practices",
		mcp.WithDescription("Collect documentation excerpts and guidance for a topic."),
		mcp.WithString("topic",
			mcp.Required(),
			mcp.Description("Topic to search for, e.g. component design"),
		),
	)
}

func allComponentsTool() mcp.Tool {
	return mcp.NewTool("get_all_components",
		mcp.WithDescription("List every indexed component with a one-line summary."),
	)
}

func allUtilitiesTool() mcp.Tool {
	return mcp.NewTool("get_all_utilities",
		mcp.WithDescription("List every indexed utility module with a one-line summary."),
	)
}

func allPluginsTool() mcp.Tool {
	return mcp.NewTool("get_all_plugins",
		mcp.WithDescription("List every indexed plugin with a one-line summary."),
	)
}
