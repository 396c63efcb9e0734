package synth

// Canned content for the generation endpoints. The showcase prompt ships
// with the frontend demo; everything else is assembled from these tables.

// SamplePrompt is the showcase prompt. Matching is case-insensitive.
const SamplePrompt = "Describe the future of AI in space exploration, with stunning visuals of advanced spacecraft."

const sampleText = "AI in space exploration is poised to revolutionize humanity's understanding and presence beyond Earth. Imagine autonomous probes that can identify and analyze exoplanets with unprecedented speed, making real-time decisions about sample collection and data transmission. Swarms of AI-powered nanobots could construct self-repairing habitats on Mars or the Moon, using local resources with minimal human intervention.\n\n" +
	"Further into the future, AI will be central to managing vast interstellar voyages. It will handle complex navigation, life support systems, and scientific data processing, freeing human astronauts to focus on discovery. AI companions will provide psychological support and act as expert assistants, capable of diagnosing system failures or identifying new biological lifeforms. From optimizing fuel efficiency for deep-space missions to enabling communication across light-years, AI is not just a tool; it's becoming an indispensable partner in our cosmic journey, pushing the boundaries of what's possible."

const (
	visionPrefix = "Here's a concise vision for '"
	visionBody   = "':\n\n1) Foundation: Modern AI systems coordinate sensing, planning, and action across a network of agents.\n2) Experience: Natural, multimodal interaction translates ideas into high‑fidelity media and simulations.\n3) Reliability: Safety, monitoring, and self‑healing keep complex missions resilient.\n\nZooming in, expect rapid iteration cycles: models reason over live data, generate options, then test them in fast,\nphysics‑aware sandboxes. The result is a virtuous loop of design → simulation → deployment, guided by human intent\nand transparent constraints.\n\nIn practice, this means better decisions, richer creativity, and systems that collaborate with us—augmenting human\njudgment rather than replacing it."
)

const (
	sampleOpening = "Welcome to AI Power. In today's episode, we explore the future of AI in space exploration—how intelligent systems will expand our reach and resilience beyond Earth. "
	openingPrefix = "Welcome to AI Power. Today's episode explores: "
	openingSuffix = ". "
)

var scriptSections = [...]string{
	"Origins: how autonomy moved from labs to deep space.",
	"Sensing: fusing multi-spectral data, onboard learning, and anomaly detection.",
	"Planning: model-predictive control, uncertainty, and responsible decision-making.",
	"Construction: self-assembling infrastructure and in-situ resource utilization.",
	"Health: predictive maintenance and closed-loop life-support.",
	"Human factors: copilots for cognition, creativity, and care during long missions.",
	"Interstellar scale: coordination under extreme latency and sparse information.",
	"Ethics and governance: verifiability, transparency, and alignment.",
	"Frontiers: biological discovery, terraforming aids, and cosmic archaeology.",
	"Closing: a vision of collaborative intelligence among stars.",
}

const elaboration = "Imagine the choreography: swarms negotiate roles, exchange compressed world models, and rehearse actions in fast simulations before a single thruster fires. " +
	"Each success feeds a continuously improving library of tactics, grounded by telemetry and human feedback."

const svgTemplate = `
<svg xmlns='http://www.w3.org/2000/svg' width='{w}' height='{h}' viewBox='0 0 {w} {h}'>
  <defs>
    <linearGradient id='g' x1='0' y1='0' x2='1' y2='1'>
      <stop offset='0%' stop-color='{c1}' />
      <stop offset='100%' stop-color='{c2}' />
    </linearGradient>
    <filter id='glow' x='-50%' y='-50%' width='200%' height='200%'>
      <feGaussianBlur stdDeviation='8' result='blur'/>
      <feMerge><feMergeNode in='blur'/><feMergeNode in='SourceGraphic'/></feMerge>
    </filter>
  </defs>
  <rect width='100%' height='100%' fill='black' />
  <circle cx='{cx}' cy='{cy}' r='{r}' fill='url(#g)' filter='url(#glow)' opacity='0.9'/>
  <g fill='none' stroke='white' stroke-opacity='0.7'>
    <path d='M 0 {cy} C {w4} {cy2} {w2} {cy3} {w} {cy}' stroke='url(#g)' stroke-width='2'/>
    <path d='M {w2} 0 C {w3} {h4} {w4} {h3} {w2} {h}' stroke='url(#g)' stroke-width='1.5' stroke-dasharray='6 6'/>
  </g>
  <text x='{pad}' y='{pad2}' font-size='20' fill='white' font-family='Inter, system-ui, -apple-system, Segoe UI, Roboto'>AI Power · {title}</text>
  <text x='{pad}' y='{pad3}' font-size='12' fill='#cbd5e1' font-family='Inter, system-ui, -apple-system, Segoe UI, Roboto'>"{subtitle}"</text>
</svg>
`
