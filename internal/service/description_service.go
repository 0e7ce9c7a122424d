package service

// FallbackDescription is returned for any project name not in the curated
// table.
const FallbackDescription = "This project demonstrates advanced programming concepts and problem-solving skills."

var projectDescriptions = map[string]string{
	"libft":            "A custom implementation of the C standard library functions, forming the foundation for all later C projects.",
	"get_next_line":    "A function that reads a line from a file descriptor, handling buffering and multiple descriptors.",
	"ft_printf":        "A reimplementation of the printf function, covering conversions, flags and variadic arguments.",
	"Born2beroot":      "A system administration project setting up a hardened virtual machine with strict partitioning and security policies.",
	"so_long":          "A small 2D game built with the MiniLibX graphics library, with map parsing and sprite rendering.",
	"FdF":              "A wireframe renderer that projects 3D landscapes into isometric 2D using the MiniLibX library.",
	"fract-ol":         "An interactive fractal explorer rendering Mandelbrot and Julia sets with zoom and color shifting.",
	"minitalk":         "A client-server data exchange program using only UNIX signals as the transport.",
	"pipex":            "A reimplementation of shell pipelines, wiring processes together with pipes, forks and file redirections.",
	"push_swap":        "A sorting challenge on two stacks with a restricted instruction set, optimized for the fewest moves.",
	"minishell":        "A small POSIX shell with a prompt, pipes, redirections, environment expansion and builtins.",
	"Philosophers":     "The dining philosophers problem solved with threads and mutexes, avoiding deadlocks and starvation.",
	"cub3d":            "A raycasting engine in the spirit of Wolfenstein 3D, rendering a textured maze in first person.",
	"miniRT":           "A minimal ray tracer rendering spheres, planes and cylinders with lighting and shadows.",
	"NetPractice":      "A networking exercise on IP addressing, subnetting and routing across small network topologies.",
	"Inception":        "A Docker infrastructure project composing NGINX, WordPress and MariaDB with volumes and an internal network.",
	"webserv":          "An HTTP/1.1 server written from scratch in C++, with non-blocking I/O, CGI support and configuration files.",
	"ft_irc":           "An IRC server in C++ handling multiple clients, channels, operators and the core IRC commands.",
	"ft_transcendence": "A full-stack web application with real-time multiplayer Pong, chat, accounts and OAuth login.",
	"ft_containers":    "A reimplementation of C++ STL containers including vector, map and stack with iterators and allocators.",
	"libasm":           "Basic string and I/O functions rewritten in x86-64 assembly with the System V calling convention.",
	"CPP Module 00":    "An introduction to C++ covering classes, member functions, namespaces and the orthodox canonical form.",
	"CPP Module 09":    "Advanced C++ exercises with STL containers and algorithms applied to parsing and sorting problems.",
	"Exam Rank 02":     "A timed machine exam validating mastery of C fundamentals under exam conditions.",
}

// DescriptionService resolves a project name to a curated one-sentence
// description. Lookup is exact and case-sensitive.
type DescriptionService struct {
	descriptions map[string]string
	fallback     string
}

// NewDescriptionService returns a resolver backed by the built-in table.
// Passing a non-nil table replaces it, which keeps tests small.
func NewDescriptionService(table map[string]string) *DescriptionService {
	if table == nil {
		table = projectDescriptions
	}
	return &DescriptionService{
		descriptions: table,
		fallback:     FallbackDescription,
	}
}

func (d *DescriptionService) Describe(name string) string {
	if description, ok := d.descriptions[name]; ok {
		return description
	}
	return d.fallback
}
